package ycsb

import (
	"strconv"
	"time"

	g "github.com/benchctl/ycsb/generator"
)

func concatFieldsStr(fields []string) string {
	var ret string
	if len(fields) > 0 {
		afterFirst := false
		for _, f := range fields {
			if afterFirst {
				ret += ", "
			} else {
				afterFirst = true
			}
			ret += f
		}
	} else {
		ret = "<all fields>"
	}
	return ret
}

func concatKVStr(values KVMap) string {
	var ret string
	afterFirst := false
	for k, v := range values {
		if afterFirst {
			ret += ", "
		} else {
			afterFirst = true
		}
		ret += k + "=" + string(v)
	}
	return ret
}

// BasicDB is a do-nothing DB binding that logs every operation it receives
// (optionally, with a simulated delay), used to exercise the client driver
// and measurement pipeline without a real backing store.
type BasicDB struct {
	*DBBase
	verbose        bool
	randomizeDelay bool
	toDelayMs      int64
}

func NewBasicDB() *BasicDB {
	return &BasicDB{
		DBBase: NewDBBase(),
	}
}

func (self *BasicDB) delay() {
	if self.toDelayMs <= 0 {
		return
	}
	var ms int64
	if self.randomizeDelay {
		ms = g.NextInt64(self.toDelayMs)
		if ms == 0 {
			return
		}
	} else {
		ms = self.toDelayMs
	}
	time.Sleep(time.Duration(MillisecondToNanosecond(ms)))
}

func (self *BasicDB) Init() error {
	p := self.GetProperties()
	var err error
	self.verbose, err = strconv.ParseBool(
		p.GetDefault(ConfigBasicDBVerbose, ConfigBasicDBVerboseDefault))
	if err != nil {
		return err
	}
	self.toDelayMs, err = strconv.ParseInt(
		p.GetDefault(ConfigSimulateDelay, ConfigSimulateDelayDefault), 0, 64)
	if err != nil {
		return err
	}
	self.randomizeDelay, err = strconv.ParseBool(
		p.GetDefault(ConfigRandomizeDelay, ConfigRandomizeDelayDefault))
	if err != nil {
		return err
	}
	if self.verbose {
		OutputProperties(p)
	}
	return nil
}

func (self *BasicDB) Cleanup() error {
	return nil
}

func (self *BasicDB) Read(table string, key string, fields []string, options Options) (KVMap, StatusType) {
	self.delay()
	if self.verbose {
		Output("READ %s %s [%s]", table, key, concatFieldsStr(fields))
	}
	return nil, StatusOK
}

func (self *BasicDB) Scan(table string, startKey string, recordCount int64, fields []string) ([]KVMap, StatusType) {
	self.delay()
	if self.verbose {
		Output("SCAN %s %s %d [%s]", table, startKey, recordCount, concatFieldsStr(fields))
	}
	return nil, StatusOK
}

func (self *BasicDB) Update(table string, key string, values KVMap) StatusType {
	self.delay()
	if self.verbose {
		Output("UPDATE %s %s [%s]", table, key, concatKVStr(values))
	}
	return StatusOK
}

func (self *BasicDB) Insert(table string, key string, values KVMap, options Options) StatusType {
	self.delay()
	if self.verbose {
		Output("INSERT %s %s [%s]", table, key, concatKVStr(values))
	}
	return StatusOK
}

func (self *BasicDB) Delete(table string, key string) StatusType {
	self.delay()
	if self.verbose {
		Output("DELETE %s %s", table, key)
	}
	return StatusOK
}
