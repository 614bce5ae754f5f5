// Package logger provides leveled console logging for envseal commands.
//
// Verbosity is controlled by the --verbose and --debug flags:
//
//	Logger.Infof()          // --verbose or --debug
//	Logger.Debugf()         // --debug only
//	Logger.Warnf()          // --verbose or --debug
//	Logger.WarnfAlways()    // always
//	Logger.Errorf()         // always
//	Logger.ErrorfAndReturn  // always, and returns the message as an error
//
// Commands create a logger in the root command's PersistentPreRun:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Saving %d secrets", count)
//
// Never pass secret values or key material to a logger. Names and paths only.
package logger
