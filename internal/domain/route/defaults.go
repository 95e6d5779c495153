package route

// Route names of the default table.
const (
	Home          = "home"
	YourGames     = "your-games"
	EditGame      = "edit-game"
	AddGame       = "add-game"
	CreateEvent   = "create-event"
	RegisterEvent = "register-event"
	GameCatalog   = "game-catalog"
	CreateAccount = "create-account"
	Login         = "login"
	UpdateAccount = "update-account"
	UserSettings  = "user-settings"
	Secure        = "secure"
)

// DefaultTable returns the application's route table. Secure is the landing route.
func DefaultTable() *Table {
	return MustNewTable(Secure,
		Descriptor{Name: Home, Pattern: "/", View: "home", Access: RequiresAuth},
		Descriptor{
			Name:       YourGames,
			Pattern:    "/your-games/{userId}",
			View:       "your-games",
			Access:     RequiresAuth,
			PathInputs: true,
			Query:      SelectQuery("q"),
		},
		Descriptor{
			Name:       EditGame,
			Pattern:    "/edit-game/{userId}/{title}",
			View:       "edit-game",
			Access:     RequiresAuth,
			PathInputs: true,
		},
		Descriptor{
			Name:       AddGame,
			Pattern:    "/add-game/{userId}",
			View:       "add-game",
			Access:     RequiresAuth,
			PathInputs: true,
		},
		Descriptor{
			Name:       CreateEvent,
			Pattern:    "/create-event/{userId}",
			View:       "create-event",
			Access:     RequiresAuth,
			PathInputs: true,
		},
		Descriptor{
			Name:    RegisterEvent,
			Pattern: "/register-event",
			View:    "register-event",
			Access:  RequiresAuth,
			Query:   SelectQuery("q_registered", "q_available", "past_registered", "past_available", "show_full"),
		},
		Descriptor{
			Name:    GameCatalog,
			Pattern: "/games",
			View:    "game-catalog",
			Access:  Public,
			Query:   SelectQuery("category"),
		},
		Descriptor{Name: CreateAccount, Pattern: "/create", View: "create-account", Access: Public},
		Descriptor{Name: Login, Pattern: "/login", View: "login", Access: Public},
		Descriptor{Name: UpdateAccount, Pattern: "/update", View: "update-account", Access: RequiresAuth},
		Descriptor{Name: UserSettings, Pattern: "/userSetting", View: "user-settings", Access: RequiresAuth},
		Descriptor{Name: Secure, Pattern: "/secure", View: "secure", Access: Public},
	)
}
