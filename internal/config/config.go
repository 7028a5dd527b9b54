package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Contact-Manager/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Contact Manager"
	AppID             = "com.github.contactmanager.contact-manager"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"

	// DefaultAPIURL is the users resource of the public mock API.
	// Writes against it succeed but are never persisted.
	DefaultAPIURL = "https://jsonplaceholder.typicode.com/users"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagAPI          = "api"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescAPI      = "Override the contacts API base URL for this run"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 720
	MainWindowHeight    = 760
	SettingsWindowWidth = 520

	// Preference Keys
	PrefAPIURL   = "api_url"
	PrefLanguage = "language"
	PrefFeedPort = "feed_port"
	PrefLastRun  = "last_run_version"

	// Layout
	LayoutColumnsDouble = 2
	ListColumns         = 2

	// ExportFileName is the suggested name in the export dialog.
	ExportFileName = "contacts.vcf"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyWinSettings  = "win_settings_title"
	TKeyFormTitle    = "form_title"
	TKeyListTitle    = "list_title"
	TKeyBtnAdd       = "btn_add_contact"
	TKeyBtnUpdate    = "btn_update"
	TKeyBtnDelete    = "btn_delete"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyMenuFile     = "menu_file"
	TKeyMenuExport   = "menu_export"
	TKeyMenuSettings = "menu_settings"

	// Form placeholders, one per contact.Field.
	TKeyFieldName     = "field_name"
	TKeyFieldUsername = "field_username"
	TKeyFieldEmail    = "field_email"
	TKeyFieldStreet   = "field_street"
	TKeyFieldSuite    = "field_suite"
	TKeyFieldCity     = "field_city"
	TKeyFieldZipcode  = "field_zipcode"
	TKeyFieldLat      = "field_lat"
	TKeyFieldLng      = "field_lng"

	// Card lines
	TKeyLblEmail   = "lbl_email"
	TKeyLblAddress = "lbl_address"
	TKeyLblGeo     = "lbl_geo"

	// Settings
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblAPIURL    = "lbl_api_url"
	TKeyHelpAPIURL   = "help_api_url"
	TKeyLblPort      = "lbl_feed_port"
	TKeyHelpPort     = "help_feed_port"
	TKeyLblGeneral   = "lbl_general"
	TKeyLblFooter    = "lbl_footer"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
	TKeyErrURL       = "err_api_url"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"

	// GeoURIFormat renders the vCard 4.0 GEO value (RFC 5870).
	GeoURIFormat = VCardGeoPref + "%s,%s"

	// Display formats for a contact card.
	FormatTitle       = "%s (%s)"
	FormatAddressLine = "%s, %s, %s, %s"
	FormatGeoLine     = "%s, %s"
	FormatCardLine    = "%s: %s"
)

// -----------------------------------------------------------------------------
// Standards: vCard
// -----------------------------------------------------------------------------

const (
	VCardVersion = "4.0"
	VCardGeoPref = "geo:"
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Limits
	MinPort = 1
	MaxPort = 65535

	// File Extensions
	ExtVCF = ".vcf"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	// HTTPTimeout is zero: the remote calls carry no deadline of their own and
	// are only cancelled with the application context.
	HTTPTimeout         = 0 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderAccept          = "Accept"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"

	MimeJSON            = "application/json; charset=utf-8"
	MimeTextVCard       = "text/vcard; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Remote Operations
// -----------------------------------------------------------------------------

const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrRequestFailed    = "request failed"
	ErrUnknownContact   = "no contact with this id"
	ErrInvalidID        = "invalid contact id"
	ErrListContacts     = "Error fetching contacts"
	ErrAddContact       = "Error adding contact"
	ErrUpdateContact    = "Error updating contact"
	ErrDeleteContact    = "Error deleting contact"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrBuildRequest     = "failed to create request"
	ErrEncodeBody       = "failed to encode request body"
	ErrDecodeBody       = "failed to decode response body"
	ErrNetwork          = "network error"
	ErrStatus           = "server returned unexpected status"
	ErrVCardEncode      = "failed to encode vCard data"
	ErrExport           = "failed to export contacts"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrApplyURL         = "failed to apply API URL"
	ErrClientNoSettings = "remote client does not accept a base URL"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Contacts initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	TitleStartupError = "Startup Error"

	MsgPortBusy        = "Port %s is busy or unavailable."
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgClientReady     = "Contacts API configured"
	MsgAppStarting     = "Starting application"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgCacheUpdated    = "Contact feed updated"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgRequest         = "Sending request"
	MsgResponse        = "Response received"
	MsgStatusError     = "Server returned error status"
	MsgContactsLoaded  = "Contacts loaded"
	MsgContactAdded    = "Contact added"
	MsgContactUpdated  = "Contact updated"
	MsgContactDeleted  = "Contact deleted"
	MsgContactsSet     = "Contact sequence replaced"
	MsgDraftReset      = "Draft reset"
	MsgExported        = "Contacts exported"
	MsgSettingsOpen    = "Opening settings window"
	MsgSettingsFocus   = "Settings window already open, requesting focus"
	MsgSettingsSave    = "Saving preferences"
	MsgRender          = "Rendering contact list"
	MsgNoMatchOnUpdate = "Updated contact no longer in sequence"

	PlaceholderURL = "https://..."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyMethod    = "method"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyOp        = "op"
	LogKeyID        = "id"
	LogKeyCount     = "count"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompClient = "client"
	CompStore  = "store"
	CompServer = "server"
	CompMain   = "main"
	CompI18n   = "i18n"
)
