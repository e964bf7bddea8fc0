package seeders

var categoriesData = []string{
	"Motor",
	"Gearbox",
	"Bearing",
	"Belt",
	"Roller",
	"Pulley",
	"Sensor",
	"Drive",
	"Coupling",
	"Scraper",
}

type demoRecord struct {
	MyconveyorID string
	LocalID      string
	Area         string
	Section      string
	CategoryName string
	OEMName      string
	Quantity     float64
	Unit         string
}

var demoRecordsData = []demoRecord{
	{MyconveyorID: "CV-001", LocalID: "L-100", Area: "North", Section: "A", CategoryName: "Motor", OEMName: "Siemens", Quantity: 2, Unit: "pcs"},
	{MyconveyorID: "CV-002", LocalID: "L-101", Area: "North", Section: "A", CategoryName: "Gearbox", OEMName: "SEW", Quantity: 1, Unit: "pcs"},
	{MyconveyorID: "CV-003", LocalID: "L-102", Area: "South", Section: "B", CategoryName: "Belt", OEMName: "Continental", Quantity: 40, Unit: "m"},
	{MyconveyorID: "CV-010", LocalID: "L-110", Area: "South", Section: "B", CategoryName: "Roller", OEMName: "Rulmeca", Quantity: 120, Unit: "pcs"},
}
