package domain

// DefaultCzechHolidays public holidays on which no courses run, regardless
// of weekday. Exact-date matches, not ranges. Extended yearly via
// config.toml (booking.holidays replaces this list when set).
var DefaultCzechHolidays = []string{
	"2024-01-01", // Nový rok
	"2024-03-29", // Veľký piatok
	"2024-04-01", // Veľkonočný pondelok
	"2024-05-01", // Sviatok práce
	"2024-05-08", // Deň víťazstva
	"2024-07-05", // Sv. Cyril a Metod
	"2024-07-06", // Upálenie Jana Husa
	"2024-09-28", // Deň českej štátnosti
	"2024-10-28", // Vznik Československej republiky
	"2024-11-17", // Deň boja za slobodu a demokraciu
	"2024-12-24", // Štedrý deň
	"2024-12-25", // Vianoce
	"2024-12-26", // Druhý sviatok vianočný
	"2025-01-01", // Nový rok
	"2025-04-18", // Veľký piatok
	"2025-04-21", // Veľkonočný pondelok
	"2025-05-01", // Sviatok práce
	"2025-05-08", // Deň víťazstva
	"2025-07-05", // Sv. Cyril a Metod
	"2025-07-06", // Upálenie Jana Husa
	"2025-09-28", // Deň českej štátnosti
	"2025-10-28", // Vznik Československej republiky
	"2025-11-17", // Deň boja za slobodu a demokraciu
	"2025-12-24", // Štedrý deň
	"2025-12-25", // Vianoce
	"2025-12-26", // Druhý sviatok vianočný
}
