package fieldtypes

// constants for rule string formatting
const (
	// DefaultRuleDelimiter joins a field's rule tokens into the rule string
	// returned by Request.Rules, e.g. "required|email".
	DefaultRuleDelimiter = "|"
	// EngineTagDelimiter joins rule tokens into a go-playground validator tag.
	EngineTagDelimiter = ","
)

// Identifiers of the builtin field types.
const (
	EmailFieldTypeIdentifier    = "email"
	UUIDFieldTypeIdentifier     = "uuid"
	CheckboxFieldTypeIdentifier = "checkbox"
	TrimFieldTypeIdentifier     = "trim"
)

// constants for builtin rule tokens
const (
	RequiredRule  = "required"
	OmitEmptyRule = "omitempty"
	EmailRule     = "email"
	UUIDRule      = "uuid"
	CheckboxRule  = "checkbox"
)

// Mime Type constants for content types.
const (
	ContentTypeApplicationJSON string = "application/json"
	ContentTypeFormURLEncoded  string = "application/x-www-form-urlencoded"
	ContentTypeDelimiter              = ";"
)

// EnvPrefix is the prefix shared by every environment variable read by LoadConfig.
const EnvPrefix = "FIELDTYPES_"
