package dialog

// Messages holds the user-facing strings of the startup dialog and the main
// window.
type Messages struct {
	StartTitle string
	MainTitle  string

	GridLabel  string
	CellLabel  string
	SpeedLabel string
	ThemeLabel string
	StartGame  string
	OK         string

	ErrorTitle      string
	BadGrid         string
	BadNumbers      string
	NotPositive     string
	SaveFailedTitle string
}

// Polish matches the wording the simulator has always shipped with.
var Polish = Messages{
	StartTitle: "Gra w życie - Start",
	MainTitle:  "Gra w życie",

	GridLabel:  "Grid Size (cols, rows):",
	CellLabel:  "Cell Size (px):",
	SpeedLabel: "Speed (gen/s):",
	ThemeLabel: "Theme:",
	StartGame:  "Start Game",
	OK:         "OK",

	ErrorTitle:      "Błąd",
	BadGrid:         "Niepoprawny format siatki.",
	BadNumbers:      "Rozmiar komórki i prędkość muszą być liczbami.",
	NotPositive:     "Wartości muszą być większe od zera.",
	SaveFailedTitle: "Nie można zapisać ustawień",
}
