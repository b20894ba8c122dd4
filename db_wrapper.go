package ycsb

import (
	"strconv"
	"strings"
	"time"
)

// DBMeasuringWrapper wraps a "real" DB and measures latencies and counts
// return codes around every call, reporting latency separately between OK
// and failed operations. Grounded on original_source's DBWrapper.java: every
// Read/Scan/Update/Insert/Delete is timed from the operation's intended
// start (set by the client thread's throttle, or now if unthrottled) through
// its actual completion, and both the raw latency and the "Intended-"
// latency (which also captures queueing delay) are recorded under the op's
// name, suffixed with "-FAILED" unless the status is tracked individually.
type DBMeasuringWrapper struct {
	db                        DB
	measurements              Measurements
	reportLatencyForEachError bool
	latencyTrackedErrors      map[string]bool
}

// WrapDBWithMeasurements installs the measuring wrapper around db. Callers
// that need every operation measured (the client driver) should do this
// once, right after constructing the DB, rather than have every workload
// call site remember to measure on its own.
func WrapDBWithMeasurements(db DB, measurements Measurements) *DBMeasuringWrapper {
	return &DBMeasuringWrapper{
		db:           db,
		measurements: measurements,
	}
}

func (self *DBMeasuringWrapper) SetProperties(p Properties) {
	self.db.SetProperties(p)
}

func (self *DBMeasuringWrapper) GetProperties() Properties {
	return self.db.GetProperties()
}

func (self *DBMeasuringWrapper) Init() error {
	if err := self.db.Init(); err != nil {
		return err
	}
	p := self.db.GetProperties()
	self.reportLatencyForEachError, _ = strconv.ParseBool(
		p.GetDefault(PropertyReportLatencyForEachError, PropertyReportLatencyForEachErrorDefault))
	if !self.reportLatencyForEachError {
		if raw := p.GetDefault(PropertyLatencyTrackedErrors, ""); raw != "" {
			self.latencyTrackedErrors = make(map[string]bool)
			for _, name := range strings.Split(raw, ",") {
				self.latencyTrackedErrors[strings.TrimSpace(name)] = true
			}
		}
	}
	return nil
}

func (self *DBMeasuringWrapper) Cleanup() error {
	intendedStartNs := self.measurements.GetIntendedStartTime()
	startNs := time.Now().UnixNano()
	err := self.db.Cleanup()
	endNs := time.Now().UnixNano()
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	self.measure("CLEANUP", status, intendedStartNs, startNs, endNs)
	return err
}

func (self *DBMeasuringWrapper) Read(table string, key string, fields []string, options Options) (KVMap, StatusType) {
	intendedStartNs := self.measurements.GetIntendedStartTime()
	startNs := time.Now().UnixNano()
	ret, status := self.db.Read(table, key, fields, options)
	endNs := time.Now().UnixNano()
	self.measure("READ", status, intendedStartNs, startNs, endNs)
	self.measurements.ReportStatus("READ", status)
	return ret, status
}

func (self *DBMeasuringWrapper) Scan(table string, startKey string, recordCount int64, fields []string) ([]KVMap, StatusType) {
	intendedStartNs := self.measurements.GetIntendedStartTime()
	startNs := time.Now().UnixNano()
	ret, status := self.db.Scan(table, startKey, recordCount, fields)
	endNs := time.Now().UnixNano()
	self.measure("SCAN", status, intendedStartNs, startNs, endNs)
	self.measurements.ReportStatus("SCAN", status)
	return ret, status
}

func (self *DBMeasuringWrapper) Update(table string, key string, values KVMap) StatusType {
	intendedStartNs := self.measurements.GetIntendedStartTime()
	startNs := time.Now().UnixNano()
	status := self.db.Update(table, key, values)
	endNs := time.Now().UnixNano()
	self.measure("UPDATE", status, intendedStartNs, startNs, endNs)
	self.measurements.ReportStatus("UPDATE", status)
	return status
}

func (self *DBMeasuringWrapper) Insert(table string, key string, values KVMap, options Options) StatusType {
	intendedStartNs := self.measurements.GetIntendedStartTime()
	startNs := time.Now().UnixNano()
	status := self.db.Insert(table, key, values, options)
	endNs := time.Now().UnixNano()
	self.measure("INSERT", status, intendedStartNs, startNs, endNs)
	self.measurements.ReportStatus("INSERT", status)
	return status
}

// Traces passes through to the wrapped adapter; trace collection isn't
// itself a timed operation.
func (self *DBMeasuringWrapper) Traces() []TraceRecord {
	return self.db.Traces()
}

func (self *DBMeasuringWrapper) Delete(table string, key string) StatusType {
	intendedStartNs := self.measurements.GetIntendedStartTime()
	startNs := time.Now().UnixNano()
	status := self.db.Delete(table, key)
	endNs := time.Now().UnixNano()
	self.measure("DELETE", status, intendedStartNs, startNs, endNs)
	self.measurements.ReportStatus("DELETE", status)
	return status
}

// measure records both the raw and intended-vs-actual latency (in
// microseconds) for op under measurementName, which is op itself when
// status is OK, or op suffixed with either the specific status name (when
// that status is being tracked individually) or "-FAILED".
func (self *DBMeasuringWrapper) measure(op string, status StatusType, intendedStartNs, startNs, endNs int64) {
	name := self.measurementName(op, status)
	self.measurements.Measure(name, (endNs-startNs)/int64(time.Microsecond))
	self.measurements.MeasureIntended(name, (endNs-intendedStartNs)/int64(time.Microsecond))
}

func (self *DBMeasuringWrapper) measurementName(op string, status StatusType) string {
	if status == StatusOK {
		return op
	}
	if self.reportLatencyForEachError || self.latencyTrackedErrors[status.String()] {
		return op + "-" + status.String()
	}
	return op + "-FAILED"
}
