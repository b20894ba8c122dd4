package ycsb

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"os"
	"strings"
	"time"
)

// Properties holds string key/value configuration, the same shape as a Java
// java.util.Properties bag: workload files and -p overrides merge into one of
// these before Init() is called on a DB or Workload. The defaults in
// config.go are not merged in; readers apply them through GetDefault.
type Properties map[string]string

func NewProperties() Properties {
	return make(Properties)
}

func (self Properties) Get(key string) string {
	v, _ := self[key]
	return v
}

func (self Properties) GetDefault(key string, defaultValue string) string {
	if v, ok := self[key]; ok {
		return v
	}
	return defaultValue
}

func (self Properties) Add(key, value string) {
	self[key] = value
}

// Merge copies every key/value from other into self, overwriting any
// existing keys of the same name.
func (self Properties) Merge(other map[string]string) {
	for k, v := range other {
		self[k] = v
	}
}

// LoadProperties reads a file of "key=value" lines into a new Properties,
// skipping blank lines and lines starting with "#". The format matches the
// *.properties workload files shipped under workloads/.
func LoadProperties(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := NewProperties()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, NewErrorf("malformed properties line: %q", line)
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		p.Add(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func NewErrorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

func Output(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	fmt.Println("")
}

// Println writes a single line to stdout. When its first argument is a
// string, it is used as the format for the remaining arguments, as in
// Output; otherwise the arguments are printed as by fmt.Println.
func Println(args ...interface{}) {
	if len(args) > 0 {
		if format, ok := args[0].(string); ok {
			Output(format, args[1:]...)
			return
		}
	}
	fmt.Println(args...)
}

func OutputProperties(p Properties) {
	Output("***************** properties *****************")
	if p != nil {
		for k, v := range p {
			Output("\"%s\"=\"%s\"", k, v)
		}
	}
	Output("**********************************************")
}

// NowMS returns the current time in milliseconds since the Unix epoch.
// Latencies in this package are measured and reported in microseconds.
func NowMS() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func SecondToNanosecond(sec int64) int64 {
	return sec * int64(time.Second)
}

func MillisecondToSecond(ms int64) int64 {
	return ms / 1000
}

func MillisecondToNanosecond(ms int64) int64 {
	return ms * int64(time.Millisecond)
}

func NanosecondToMicrosecond(ns int64) int64 {
	return ns / int64(time.Microsecond)
}

func NanosecondToMillisecond(ns int64) int64 {
	return ns / int64(time.Millisecond)
}

// RandomBytes returns a slice of length bytes drawn from a
// cryptographically unpredictable source. Used to fill field values that
// don't participate in data-integrity checking, where speed matters more
// than reproducibility.
func RandomBytes(length int64) []byte {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}
