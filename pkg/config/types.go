// Package config holds default values, limits and environment variable
// helpers shared by the Tapestry SDK and its command-line tool.
package config

// DefaultBaseURL is the Tapestry web API endpoint used when none is configured.
const DefaultBaseURL = "https://tapestry.tapad.com/tapestry/1"

// Query parameter names understood by the Tapestry web API.
const (
	ParamPartnerID  = "ta_partner_id"
	ParamAddData    = "ta_add_data"
	ParamAudiences  = "ta_add_audiences"
	ParamGetDevices = "ta_get_devices"
	ParamDepth      = "ta_depth"
)

// Limits enforced by the strict request builder.
const (
	// MaxKeyLength is the maximum length of a data key, in characters.
	MaxKeyLength = 256

	// MaxValueLength is the maximum length of a data value, in characters.
	MaxValueLength = 2048

	// MaxAudienceLength is the maximum length of an audience identifier.
	MaxAudienceLength = 256

	// MaxDepth is the largest depth the strict builder accepts.
	MaxDepth = 10
)

// DataSeparator separates a key from its value inside a ta_add_data parameter.
const DataSeparator = ":"

// AudienceSeparator joins audience identifiers inside ta_add_audiences.
const AudienceSeparator = ","
