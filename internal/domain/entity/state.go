package entity

// Temas de la interfaz.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings configuración global de la aplicación (registro único, sin identidad).
type Settings struct {
	CompanyName string `json:"companyName"`
	Currency    string `json:"currency"` // código ISO 4217, ej. USD, COP
}

// User identidad de la sesión autenticada.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session sesión de autenticación (parte del mismo snapshot, se resetea con logout).
type Session struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// State snapshot completo de la aplicación: es la unidad que se serializa y
// se sobreescribe de forma atómica en cada mutación.
type State struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Movements  []Movement `json:"movements"`
	Settings   Settings   `json:"settings"`
	Theme      string     `json:"theme"`
	Auth       Session    `json:"auth"`
}

// DefaultState estado inicial documentado: colecciones vacías, moneda USD,
// tema claro y sesión cerrada. Se usa cuando no hay snapshot guardado o el
// guardado no se puede decodificar.
func DefaultState() State {
	return State{
		Products:   []Product{},
		Categories: []Category{},
		Movements:  []Movement{},
		Settings: Settings{
			CompanyName: "My Inventory",
			Currency:    "USD",
		},
		Theme: ThemeLight,
		Auth:  Session{IsAuthenticated: false, User: nil},
	}
}

// Clone devuelve una copia profunda del estado. Los colaboradores reciben
// copias: el contenedor en memoria es propiedad exclusiva del Store.
func (s State) Clone() State {
	out := s
	out.Products = make([]Product, len(s.Products))
	copy(out.Products, s.Products)
	out.Categories = make([]Category, len(s.Categories))
	copy(out.Categories, s.Categories)
	out.Movements = make([]Movement, len(s.Movements))
	copy(out.Movements, s.Movements)
	if s.Auth.User != nil {
		u := *s.Auth.User
		out.Auth.User = &u
	}
	return out
}
