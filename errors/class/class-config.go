package class

// MjrConfig - major that classifies errors related with the config.
var MjrConfig Major

var (
	// MnrConfigRead is the 'MjrConfig' minor error classification
	// for the config read issues.
	MnrConfigRead Minor

	// ConfigReadNotFound is the 'MjrConfig', 'MnrConfigRead' error classification
	// for the read config not found issue.
	ConfigReadNotFound Class

	// ConfigReadFormat is the 'MjrConfig', 'MnrConfigRead' error classification
	// for config files that could not be decoded.
	ConfigReadFormat Class

	// MnrConfigValue is the 'MjrConfig' minor error classification
	// for the config value issues.
	MnrConfigValue Minor

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// for config validation failures.
	ConfigValueInvalid Class

	// ConfigValueNaming is the 'MjrConfig', 'MnrConfigValue' error classification
	// for unknown naming conventions.
	ConfigValueNaming Class

	// ConfigValueNil is the 'MjrConfig', 'MnrConfigValue' error classification
	// for the nil config value.
	ConfigValueNil Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "config related issues")

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "config read issues")
	ConfigReadNotFound = MnrConfigRead.MustRegisterIndex("Not Found", "config not found while reading").Class()
	ConfigReadFormat = MnrConfigRead.MustRegisterIndex("Format", "config file format is not valid").Class()

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "config value issues")
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "validating config failed").Class()
	ConfigValueNaming = MnrConfigValue.MustRegisterIndex("Naming", "unknown naming convention").Class()
	ConfigValueNil = MnrConfigValue.MustRegisterIndex("Nil", "provided nil config value").Class()
}
