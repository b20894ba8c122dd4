package ycsb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeDB is a minimal DB whose return status is controlled by the test, so
// the wrapper's status-dependent latency naming can be exercised directly
// without a real binding.
type fakeDB struct {
	*DBBase
	status     StatusType
	cleanupErr error
	lastTable  string
	lastKey    string
}

func newFakeDB(status StatusType) *fakeDB {
	return &fakeDB{DBBase: NewDBBase(), status: status}
}

func (self *fakeDB) Init() error    { return nil }
func (self *fakeDB) Cleanup() error { return self.cleanupErr }

func (self *fakeDB) Read(table string, key string, fields []string, options Options) (KVMap, StatusType) {
	self.lastTable, self.lastKey = table, key
	return KVMap{"field1": []byte("v")}, self.status
}

func (self *fakeDB) Scan(table string, startKey string, recordCount int64, fields []string) ([]KVMap, StatusType) {
	return nil, self.status
}

func (self *fakeDB) Update(table string, key string, values KVMap) StatusType {
	return self.status
}

func (self *fakeDB) Insert(table string, key string, values KVMap, options Options) StatusType {
	return self.status
}

func (self *fakeDB) Delete(table string, key string) StatusType {
	return self.status
}

func TestDBMeasuringWrapperRecordsLatencyAndStatus(t *testing.T) {
	measurements := NewDefaultMeasurements(NewProperties())
	fake := newFakeDB(StatusOK)
	fake.SetProperties(NewProperties())
	wrapper := WrapDBWithMeasurements(fake, measurements)
	require.NoError(t, wrapper.Init())

	_, status := wrapper.Read("usertable", "key1", []string{"field1"}, nil)
	require.Equal(t, StatusOK, status)
	require.Equal(t, "usertable", fake.lastTable)
	require.Equal(t, "key1", fake.lastKey)

	status = wrapper.Update("usertable", "key1", KVMap{"field1": []byte("v")})
	require.Equal(t, StatusOK, status)

	summary := measurements.GetSummary()
	require.Contains(t, summary, "READ")
	require.Contains(t, summary, "UPDATE")
	require.NotContains(t, summary, "READ-FAILED")
}

func TestDBMeasuringWrapperTagsFailuresAsFAILEDByDefault(t *testing.T) {
	measurements := NewDefaultMeasurements(NewProperties())
	fake := newFakeDB(StatusNotFound)
	fake.SetProperties(NewProperties())
	wrapper := WrapDBWithMeasurements(fake, measurements)
	require.NoError(t, wrapper.Init())

	_, status := wrapper.Read("usertable", "key1", nil, nil)
	require.Equal(t, StatusNotFound, status)

	summary := measurements.GetSummary()
	require.Contains(t, summary, "READ-FAILED")
}

func TestDBMeasuringWrapperTracksErrorIndividuallyWhenConfigured(t *testing.T) {
	measurements := NewDefaultMeasurements(NewProperties())
	fake := newFakeDB(StatusNotFound)
	props := NewProperties()
	props.Add(PropertyLatencyTrackedErrors, "NOT_FOUND")
	fake.SetProperties(props)
	wrapper := WrapDBWithMeasurements(fake, measurements)
	require.NoError(t, wrapper.Init())

	status := wrapper.Insert("usertable", "key1", KVMap{"field1": []byte("v")}, nil)
	require.Equal(t, StatusNotFound, status)

	summary := measurements.GetSummary()
	require.Contains(t, summary, "INSERT-NOT_FOUND")
	require.NotContains(t, summary, "INSERT-FAILED")
}

func TestDBMeasuringWrapperReportLatencyForEachError(t *testing.T) {
	measurements := NewDefaultMeasurements(NewProperties())
	fake := newFakeDB(StatusError)
	props := NewProperties()
	props.Add(PropertyReportLatencyForEachError, "true")
	fake.SetProperties(props)
	wrapper := WrapDBWithMeasurements(fake, measurements)
	require.NoError(t, wrapper.Init())

	status := wrapper.Delete("usertable", "key1")
	require.Equal(t, StatusError, status)

	summary := measurements.GetSummary()
	require.Contains(t, summary, "DELETE-ERROR")
}
