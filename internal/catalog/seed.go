package catalog

import "snackpos/internal/core"

// Default menu seeded into an empty catalog, ids 1-4. The images are the
// inline SVG placeholders shipped with the shop UI.
func defaultMenu() []core.MenuItem {
	return []core.MenuItem{
		{
			ID:    1,
			Name:  "Mixture",
			Price: core.Money{Paise: 5000},
			Image: seedImage("%23ff9800", "white", "Mixture"),
		},
		{
			ID:    2,
			Name:  "Nippat",
			Price: core.Money{Paise: 4000},
			Image: seedImage("%23ff5722", "white", "Nippat"),
		},
		{
			ID:    3,
			Name:  "Murukku",
			Price: core.Money{Paise: 6000},
			Image: seedImage("%23ffc107", "white", "Murukku"),
		},
		{
			ID:    4,
			Name:  "Popcorn",
			Price: core.Money{Paise: 3000},
			Image: seedImage("%23ffeb3b", "%23333", "Popcorn"),
		},
	}
}

func seedImage(fill, textFill, label string) string {
	return `data:image/svg+xml,%3Csvg xmlns=%22http://www.w3.org/2000/svg%22 width=%22200%22 height=%22150%22%3E%3Crect fill=%22` + fill +
		`%22 width=%22200%22 height=%22150%22/%3E%3Ctext fill=%22` + textFill +
		`%22 font-family=%22sans-serif%22 font-size=%2220%22 font-weight=%22bold%22 dy=%2210.5%22 x=%2250%25%22 y=%2250%25%22 text-anchor=%22middle%22%3E` +
		label + `%3C/text%3E%3C/svg%3E`
}
