package factory

const (
	minYear = 1985
	maxYear = 2025
)

type brand struct {
	name   string
	prefix string
	models []string
}

var brands = []brand{
	{name: "John Deere", prefix: "JD", models: []string{"6120M", "7R 330", "8R 410", "S780", "1775NT"}},
	{name: "Case IH", prefix: "CIH", models: []string{"Magnum 340", "Puma 185", "Axial-Flow 8250", "Patriot 4440"}},
	{name: "New Holland", prefix: "NH", models: []string{"T7.270", "CR10.90", "BigBaler 1290", "T5.120"}},
	{name: "Kubota", prefix: "KU", models: []string{"M7-172", "L3901", "M5-111", "MX5200"}},
	{name: "Massey Ferguson", prefix: "MF", models: []string{"8S.265", "5713 SL", "IDEAL 9T", "1840"}},
	{name: "Fendt", prefix: "FT", models: []string{"942 Vario", "724 Vario", "Katana 85", "Rogator 655"}},
	{name: "Claas", prefix: "CL", models: []string{"Lexion 8900", "Jaguar 960", "Axion 870", "Quadrant 5300"}},
	{name: "Valtra", prefix: "VT", models: []string{"T254", "N175", "Q305"}},
}
