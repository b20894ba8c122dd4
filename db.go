package ycsb

import (
	"errors"
	g "github.com/benchctl/ycsb/generator"
)

var (
	Error              = errors.New("The operation failed.")
	NotFound           = errors.New("The requested record was not found.")
	NotImplemented     = errors.New("The operation is not implemented for the current binding.")
	UnexpectedState    = errors.New("The operation reported success, but the result was not as expected.")
	BadRequest         = errors.New("The request was not valid.")
	Forbidden          = errors.New("The operation is forbidden.")
	ServiceUnavailable = errors.New("Dependant service for the current binding is not available.")
)

// Binary represents arbitrary binary value(byte array).
type Binary []byte

// Result represents the result type of db operations.
type KVMap map[string]Binary

// Options is the untyped adapter-hint mapping passed alongside read and
// insert calls (e.g. "profile", "tracing"). Adapters that don't recognize a
// key ignore it.
type Options map[string]string

// TraceRecord is one entry in the collection an adapter's Traces method may
// return. What counts as a trace is adapter-specific; BasicDB, for instance,
// never produces any.
type TraceRecord struct {
	Op          string
	Table       string
	Key         string
	TimestampNs int64
}

// DB is A layer for accessing a database to be benchmarked.
// Each routine in the client will be given its own instance of
// whatever DB class is to be used in the test.
// This class should be constructed using a no-argument constructor, so we can
// load it dynamically. Any argument-based initialization should be
// done by Init().
//
// Note that the client does not make any use of the return codes returned by
// this interface. Instead, it keeps a count of the return values and
// presents them to the user.
//
// The semantics of methods such as Insert, Update and Delete vary from database
// to database.  In particular, operations may or may not be durable once these
// methods commit, and some systems may return 'success' regardless of whether
// or not a tuple with a matching key existed before the call.  Rather than dictate
// the exact semantics of these methods, we recommend you either implement them
// to match the database's default semantics, or the semantics of your
// target application.  For the sake of comparison between experiments we also
// recommend you explain the semantics you chose when presenting performance results.
type DB interface {
	// Set the properties for this DB.
	SetProperties(p Properties)

	// Get the properties for this DB.
	GetProperties() Properties

	// Initialize any state for this DB.
	// Called once per DB instance; there is one DB instance per client routine.
	Init() error

	// Cleanup any state for this DB.
	// Called once per DB instance; there is one DB instance per client routine.
	Cleanup() error

	// Read a record from the database. options carries adapter-specific
	// hints (e.g. "profile", "tracing") and may be nil.
	// Each field/value pair from the result will be returned.
	Read(table string, key string, fields []string, options Options) (KVMap, StatusType)

	// Perform a range scan for a set of records in the database.
	// Each field/value pair from the result will be returned.
	Scan(table string, startKey string, recordCount int64, fields []string) ([]KVMap, StatusType)

	// Update a record in the database.
	// Any field/value pairs in the specified values will be written into
	// the record with the specified record key, overwriting any existing
	// values with the same field name.
	Update(table string, key string, values KVMap) StatusType

	// Insert a record in the database. Any field/value pairs in the specified
	// values will be written into the record with the specified record key.
	// options carries adapter-specific hints and may be nil.
	Insert(table string, key string, values KVMap, options Options) StatusType

	// Delete a reord from the database.
	Delete(table string, key string) StatusType

	// Traces returns whatever trace records the adapter collected since the
	// last call, possibly empty. The default embedded in DBBase always
	// returns nil; adapters that support tracing override it.
	Traces() []TraceRecord
}

type DBBase struct {
	p Properties
}

func NewDBBase() *DBBase {
	return &DBBase{}
}

func (self *DBBase) SetProperties(p Properties) {
	self.p = p
}

func (self *DBBase) GetProperties() Properties {
	return self.p
}

// Traces is the default no-op implementation; embedders that collect traces
// override it.
func (self *DBBase) Traces() []TraceRecord {
	return nil
}

func NewDB(database string, props Properties) (DB, error) {
	f, ok := Databases[database]
	if !ok {
		return nil, g.NewErrorf("unsupported database")
	}
	db := f()
	db.SetProperties(props)
	return db, nil
}
