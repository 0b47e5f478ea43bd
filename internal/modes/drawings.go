package modes

import "github.com/KirkDiggler/recall/internal/models"

type drawing struct {
	name   string
	shapes []models.Shape
}

func circle(x, y, radius int) models.Shape {
	return models.NewCircle(x, y, radius)
}

func rect(x, y, w, h int) models.Shape {
	return models.NewRectangle(x, y, w, h)
}

// curriculum is the fixed sequence of drawings replayed by the solo mode
var curriculum = []drawing{
	{name: "snowman", shapes: []models.Shape{
		circle(200, 300, 100), circle(240, 180, 60), rect(260, 160, 80, 20),
	}},
	{name: "robot", shapes: []models.Shape{
		circle(260, 100, 60), circle(280, 120, 10), circle(340, 120, 10),
		rect(315, 150, 10, 30), rect(300, 190, 40, 15), rect(260, 220, 130, 150),
		rect(160, 220, 100, 25), rect(390, 220, 100, 25),
		rect(260, 370, 40, 160), rect(350, 370, 40, 160),
	}},
	{name: "cart", shapes: []models.Shape{
		circle(50, 300, 100), circle(250, 300, 100), rect(110, 150, 300, 150),
		rect(410, 150, 150, 70), circle(520, 150, 20),
	}},
	{name: "dog", shapes: []models.Shape{
		rect(150, 300, 300, 100), rect(90, 270, 60, 60), circle(95, 270, 15),
		circle(180, 400, 30), circle(320, 400, 30), circle(220, 400, 30), circle(360, 400, 30),
		rect(450, 320, 40, 20),
	}},
	{name: "car", shapes: []models.Shape{
		rect(150, 300, 300, 100), rect(200, 250, 200, 50), circle(180, 400, 30), circle(390, 400, 30),
	}},
	{name: "house", shapes: []models.Shape{
		rect(150, 250, 300, 300), rect(180, 300, 60, 60), rect(360, 300, 60, 60),
		rect(250, 420, 80, 130), rect(330, 150, 30, 80),
		rect(140, 230, 320, 20), rect(160, 210, 280, 20), rect(180, 190, 240, 20),
	}},
	{name: "rocket", shapes: []models.Shape{
		rect(270, 200, 60, 200), circle(270, 140, 30), rect(230, 250, 40, 100),
		rect(330, 250, 40, 100), rect(270, 400, 60, 30),
	}},
	{name: "skull", shapes: []models.Shape{
		circle(220, 190, 100), circle(270, 230, 20), circle(330, 230, 20),
		rect(185, 290, 130, 10), rect(275, 340, 80, 20),
	}},
	{name: "bird", shapes: []models.Shape{
		circle(240, 250, 80), circle(260, 220, 20), circle(340, 220, 20),
		rect(315, 260, 10, 20), rect(250, 390, 20, 30), rect(370, 390, 20, 30),
	}},
	{name: "flying saucer", shapes: []models.Shape{
		rect(180, 300, 200, 40), circle(195, 155, 80), rect(220, 340, 10, 30),
		rect(280, 340, 10, 30), rect(340, 340, 10, 30),
	}},
}
