package ycsb

// MakeDBFunc constructs a fresh, uninitialized DB instance. One instance is
// created per client goroutine; Databases maps the database name given as
// the positional argument of load, run and shell to its factory.
type MakeDBFunc func() DB

var (
	Commands = map[string]bool{
		"load":  true,
		"run":   true,
		"shell": true,
	}
	Databases = map[string]MakeDBFunc{
		"basic": func() DB {
			return NewBasicDB()
		},
	}
)

// Arguments is the resolved command line: which command to run, which
// database binding to use, and the merged property set (workload file and
// -p overrides; config.go defaults are applied on read through GetDefault)
// that Loader/Runner/Shell act on.
type Arguments struct {
	Command  string
	Database string
	Options  map[string]string
	Properties
}
