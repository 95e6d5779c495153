package httpx

// CurrentPage constants identify the page being rendered. They match the
// View of the corresponding route descriptor.
const (
	PageHome          = "home"
	PageYourGames     = "your-games"
	PageEditGame      = "edit-game"
	PageAddGame       = "add-game"
	PageCreateEvent   = "create-event"
	PageRegisterEvent = "register-event"
	PageGameCatalog   = "game-catalog"
	PageCreateAccount = "create-account"
	PageLogin         = "login"
	PageUpdateAccount = "update-account"
	PageUserSettings  = "user-settings"
	PageSecure        = "secure"
)

const (
	// TabCookieName is the browser-session cookie carrying the tab scope ID.
	TabCookieName = "bg_tab"

	appName = "Board Game Hub"
)

// Template paths used for loading templates in tests and dev mode.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	StaticPathFromRoot   = "frontend/static"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:          "home-content",
	PageYourGames:     "your-games-content",
	PageEditGame:      "edit-game-content",
	PageAddGame:       "add-game-content",
	PageCreateEvent:   "create-event-content",
	PageRegisterEvent: "register-event-content",
	PageGameCatalog:   "game-catalog-content",
	PageCreateAccount: "create-account-content",
	PageLogin:         "login-content",
	PageUpdateAccount: "update-account-content",
	PageUserSettings:  "user-settings-content",
	PageSecure:        "secure-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to the landing page content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "secure-content"
}
