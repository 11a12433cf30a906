package types

// Version is embedded via -ldflags at release time
var Version = "dev"

// AppName is the service identifier used in health responses and logs
const AppName = "repopush"
