package ycsb

import (
	"bufio"
	"context"
	"math/rand"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type Client interface {
	Main()
}

// clientThread drives one DB connection through a fixed (or unbounded)
// number of operations, optionally throttled to a per-thread target rate.
// Grounded on original_source's ClientThread.java: each thread owns its own
// DB instance and workload-local state, loops calling the workload's
// DoInsert/DoTransaction, and — when throttled — computes the next
// operation's intended start time up front so that a slow operation doesn't
// let the thread race ahead of its target rate (closed-loop pacing).
type clientThread struct {
	db             DB
	workload       Workload
	props          Properties
	doTransactions bool
	opCount        int64
	opsDone        int64
	targetOpsPerMs float64
	threadIndex    int
	completedOps   *int64
	measurements   Measurements
	done           <-chan struct{}
	// globalLimiter, when non-nil, caps the combined rate of every thread
	// in the pool. Per-thread closed-loop pacing alone divides the target
	// rate evenly up front, which drifts once any thread falls behind or
	// catches up; the shared token bucket keeps the pool's aggregate rate
	// close to the configured target regardless of how threads drift.
	globalLimiter *rate.Limiter
}

func (self *clientThread) run() error {
	routineState, err := self.workload.InitRoutine(self.props)
	if err != nil {
		return errors.Wrap(err, "routine init failed")
	}

	if err := self.db.Init(); err != nil {
		return errors.Wrap(err, "db init failed")
	}
	defer self.db.Cleanup()

	// Desynchronize threads that are throttled to at most one operation per
	// millisecond: without this, every thread's throttle schedule starts from
	// the same instant and they all fire in lockstep instead of spreading
	// evenly across the tick.
	if self.targetOpsPerMs > 0 && self.targetOpsPerMs <= 1.0 {
		tickNs := int64(1.0 / self.targetOpsPerMs * float64(time.Millisecond))
		if tickNs > 0 {
			time.Sleep(time.Duration(rand.Int63n(tickNs)))
		}
	}

	var opsDone int64
	startTimeNs := time.Now().UnixNano()
	for self.opCount <= 0 || opsDone < self.opCount {
		select {
		case <-self.done:
			return nil
		default:
		}

		if self.targetOpsPerMs > 0 {
			self.throttle(startTimeNs, opsDone)
		}
		if self.globalLimiter != nil {
			if err := self.globalLimiter.Wait(context.Background()); err != nil {
				return nil
			}
		}

		var ok bool
		if self.doTransactions {
			ok = self.workload.DoTransaction(self.db, routineState)
		} else {
			ok = self.workload.DoInsert(self.db, routineState)
		}
		if !ok {
			Warnf("operation failed on thread %d", self.threadIndex)
		}
		opsDone++
		atomic.StoreInt64(&self.opsDone, opsDone)
		atomic.AddInt64(self.completedOps, 1)
	}
	return nil
}

// remainingOps returns how many operations this thread still has left to
// run, or 0 once it has caught up to (or passed) its target opCount. A
// thread with no fixed opCount (the run phase, bounded only by the
// wall-clock terminator) always reports 0 here.
func (self *clientThread) remainingOps() int64 {
	if self.opCount <= 0 {
		return 0
	}
	remaining := self.opCount - atomic.LoadInt64(&self.opsDone)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// throttle sleeps until the intended start time of the next operation,
// computed from the thread's target rate, unless that time has already
// passed (in which case the thread is behind and runs flat out to catch up).
func (self *clientThread) throttle(startTimeNs int64, opsDone int64) {
	intendedNs := startTimeNs + int64(float64(opsDone)/self.targetOpsPerMs*float64(time.Millisecond))
	self.measurements.SetIntendedStartTime(intendedNs)
	now := time.Now().UnixNano()
	if intendedNs > now {
		time.Sleep(time.Duration(intendedNs - now))
	}
}

type Loader struct {
	args *Arguments
}

func NewLoader(args *Arguments) *Loader {
	return &Loader{
		args: args,
	}
}

func (self *Loader) Main() {
	runPhase(self.args, false)
}

type Runner struct {
	args *Arguments
}

func NewRunner(args *Arguments) *Runner {
	return &Runner{
		args: args,
	}
}

func (self *Runner) Main() {
	runPhase(self.args, true)
}

// runPhase is shared between load and run: it builds the workload and one
// DB instance per thread, fans out clientThreads, optionally runs a status
// reporter and a wall-clock terminator, then exports the final measurements.
func runPhase(args *Arguments, doTransactions bool) {
	props := args.Properties
	SetMeasurementProperties(props)

	workloadName, ok := props[PropertyWorkload]
	if !ok || workloadName == "" {
		ExitOnError("usage: the %q property is required, e.g. -p workload=CoreWorkload", PropertyWorkload)
	}
	workload, err := NewWorkload(workloadName)
	if err != nil {
		ExitOnError("failed to create workload: %s", err)
	}
	if err := workload.Init(props); err != nil {
		ExitOnError("failed to init workload: %s", err)
	}

	threadCount, err := strconv.ParseInt(
		props.GetDefault(PropertyThreadCount, PropertyThreadCountDefault), 0, 64)
	if err != nil || threadCount <= 0 {
		threadCount = 1
	}

	var opCount int64
	if doTransactions {
		opCount, err = strconv.ParseInt(
			props.GetDefault(PropertyOperationCount, PropertyOperationCountDefault), 0, 64)
	} else {
		propStr := props.GetDefault(PropertyInsertCount, "")
		if propStr == "" {
			propStr = props.GetDefault(PropertyRecordCount, PropertyRecordCountDefault)
		}
		opCount, err = strconv.ParseInt(propStr, 0, 64)
	}
	if err != nil {
		ExitOnError("failed to parse operation count: %s", err)
	}

	target, err := strconv.ParseFloat(
		props.GetDefault(PropertyTarget, PropertyTargetDefault), 64)
	if err != nil {
		ExitOnError("failed to parse target: %s", err)
	}
	var perThreadTargetOpsPerMs float64
	if target > 0 {
		perThreadTargetOpsPerMs = target / float64(threadCount) / 1000.0
	}

	maxExecutionSecs, err := strconv.ParseInt(
		props.GetDefault(PropertyMaxExecutionTime, PropertyMaxExecutionTimeDefault), 0, 64)
	if err != nil {
		ExitOnError("failed to parse max execution time: %s", err)
	}
	done := NewTerminator(time.Duration(maxExecutionSecs) * time.Second)

	measurements := GetMeasurements()

	var completedOps int64

	threads := make([]*clientThread, threadCount)
	remainingOps := func() int64 {
		var total int64
		for _, t := range threads {
			if t != nil {
				total += t.remainingOps()
			}
		}
		return total
	}

	var statusReporter *StatusReporter
	statusEnabled := args.Options["s"] == "true"
	if statusEnabled {
		interval, err := strconv.ParseInt(
			props.GetDefault(PropertyStatusInterval, PropertyStatusIntervalDefault), 0, 64)
		if err != nil || interval <= 0 {
			interval = 10
		}
		label := args.Options["l"]
		statusReporter = NewStatusReporter(measurements, &completedOps, time.Duration(interval)*time.Second, true, label, remainingOps)
		go statusReporter.Run()
	}

	metricsAddr := props.GetDefault(PropertyMetricsAddr, PropertyMetricsAddrDefault)
	var metricsServer *MetricsServer
	if metricsAddr != "" {
		metricsServer = NewMetricsServer(metricsAddr, &completedOps)
		metricsServer.Start()
		defer metricsServer.Stop()
	}

	var globalLimiter *rate.Limiter
	if target > 0 {
		globalLimiter = rate.NewLimiter(rate.Limit(target), int(threadCount)+1)
	}

	group, _ := errgroup.WithContext(context.Background())
	opsPerThread := distributeOps(opCount, threadCount)
	for i := int64(0); i < threadCount; i++ {
		rawDB, err := NewDB(args.Database, props)
		if err != nil {
			ExitOnError("failed to create db: %s", err)
		}
		rawDB.SetProperties(props)
		db := WrapDBWithMeasurements(rawDB, measurements)

		thread := &clientThread{
			db:             db,
			workload:       workload,
			props:          props,
			doTransactions: doTransactions,
			opCount:        opsPerThread[i],
			targetOpsPerMs: perThreadTargetOpsPerMs,
			threadIndex:    int(i),
			completedOps:   &completedOps,
			measurements:   measurements,
			done:           done,
			globalLimiter:  globalLimiter,
		}
		threads[i] = thread
		group.Go(thread.run)
	}
	if err := group.Wait(); err != nil {
		ExitOnError("client thread pool finished with error: %s", err)
	}

	if statusReporter != nil {
		statusReporter.Stop()
	}

	if err := workload.Cleanup(); err != nil {
		Warnf("workload cleanup failed: %s", err)
	}

	exportFinalMeasurements(props, measurements)
}

// distributeOps splits opCount as evenly as possible across threadCount
// threads. A zero or negative opCount means "unbounded" for every thread,
// matching workloads (like the transaction phase with operationcount=0)
// that run until the wall-clock terminator fires instead of a fixed count.
func distributeOps(opCount, threadCount int64) []int64 {
	ret := make([]int64, threadCount)
	if opCount <= 0 {
		return ret
	}
	base := opCount / threadCount
	remainder := opCount % threadCount
	for i := int64(0); i < threadCount; i++ {
		ret[i] = base
		if i < remainder {
			ret[i]++
		}
	}
	return ret
}

func exportFinalMeasurements(props Properties, measurements Measurements) {
	exporterName := props.GetDefault(PropertyExporter, PropertyExporterDefault)
	var w *os.File
	exportFile := props.GetDefault(PropertyExportFile, "")
	if exportFile == "" {
		w = os.Stdout
	} else {
		f, err := os.Create(exportFile)
		if err != nil {
			Errorf("failed to open export file: %s", err)
			return
		}
		w = f
	}
	exporter, err := NewMeasurementExporter(exporterName, w)
	if err != nil {
		Errorf("failed to create exporter: %s", err)
		return
	}
	defer exporter.Close()
	if err := measurements.ExportMeasurements(exporter); err != nil {
		Errorf("failed to export measurements: %s", err)
	}
}

type Shell struct {
	args *Arguments
}

func NewShell(args *Arguments) *Shell {
	return &Shell{
		args: args,
	}
}

var (
	regexCmd *regexp.Regexp
)

func init() {
	regexCmd = regexp.MustCompile(`\s+`)
}

func (self *Shell) Main() {
	Println("YCSB-style command line client")
	Println(`Type "help" for command line help`)

	db, err := NewDB(self.args.Database, self.args.Properties)
	if err != nil {
		ExitOnError("fail to create specified db, error: %s", err)
	}
	db.SetProperties(self.args.Properties)
	err = db.Init()
	if err != nil {
		ExitOnError("fail to init db, error: %s", err)
	}

	Println("Connected.")
	scanner := bufio.NewScanner(os.Stdin)
	tableName := PropertyTableNameDefault
	for {
		PromptPrintf("> ")
		if !scanner.Scan() {
			break
		}
		startTime := time.Now().UnixNano()
		line := scanner.Text()
	READLINE:
		switch line {
		case "":
		case "help":
			self.help()
			continue
		case "quit":
			return
		default:
			parts := regexCmd.Split(line, -1)
			length := len(parts)
			switch parts[0] {
			case "table":
				switch length {
				case 1:
					Println(`Using table "%s"`, tableName)
				case 2:
					tableName = parts[1]
					Println(`Using table "%s"`, tableName)
				default:
					Println(`Error: syntax is "table tablename"`)
				}
			case "read":
				switch length {
				case 1:
					Println(`Error: syntax is "read keyname [field1 field2 ...]"`)
				default:
					key := parts[1]
					fields := make([]string, 0, length-2)
					for i := 2; i < length; i++ {
						fields = append(fields, parts[i])
					}
					ret, status := db.Read(tableName, key, fields, nil)
					Println("Return code: %s", status)
					for k, v := range ret {
						Println("%s=%s", k, v)
					}
				}
			case "scan":
				if length < 3 {
					Println(`Error: syntax is "scan keyname scanlength [field1 field2 ...]"`)
				} else {
					key := parts[1]
					scanLength, err := strconv.ParseInt(parts[2], 0, 64)
					if err != nil {
						Println("invalid scanlength: %s", parts[2])
						break
					}
					fields := make([]string, 0, length-3)
					for i := 3; i < length; i++ {
						fields = append(fields, parts[i])
					}
					ret, status := db.Scan(tableName, key, scanLength, fields)
					Println("Return code: %s", status)
					if len(ret) == 0 {
						Println("0 records")
					} else {
						Println("--------------------------------")
						count := 0
						for _, kv := range ret {
							Println("Record %d", count)
							count++
							for k, v := range kv {
								Println("%s=%s", k, v)
							}
							Println("--------------------------------")
						}
					}
				}
			case "update":
				if length < 3 {
					Println(`Error: syntax is "update keyname name1=value1 [name2=value2 ...]"`)
				} else {
					key := parts[1]
					values := make(map[string]Binary)
					for i := 2; i < length; i++ {
						nv := strings.Split(parts[i], "=")
						if len(nv) != 2 {
							Println(`Error: invalid name=value %s`, parts[i])
							break READLINE
						}
						values[nv[0]] = []byte(nv[1])
					}
					status := db.Update(tableName, key, values)
					Println("Result: %s", status)
				}
			case "insert":
				if length < 3 {
					Println(`Error: syntax is "insert keyname name1=value1 [name2=value2 ...]"`)
				} else {
					key := parts[1]
					values := make(map[string]Binary)
					for i := 2; i < length; i++ {
						nv := strings.Split(parts[i], "=")
						if len(nv) != 2 {
							Println(`Error: invalid name=value %s`, parts[i])
							break READLINE
						}
						values[nv[0]] = []byte(nv[1])
					}
					status := db.Insert(tableName, key, values, nil)
					Println("Result: %s", status)
				}
			case "delete":
				if length != 2 {
					Println(`Error: syntax is "delete keyname"`)
				} else {
					status := db.Delete(tableName, parts[1])
					Println("Result: %s", status)
				}
			case "traces":
				traces := db.Traces()
				if len(traces) == 0 {
					Println("0 traces")
				} else {
					for _, t := range traces {
						Println("%s %s %s @%d", t.Op, t.Table, t.Key, t.TimestampNs)
					}
				}
			default:
				Println(`Error: unknown command "%s"`, parts[0])
			}
		}
		Println("%d ms", (time.Now().UnixNano()-startTime)/int64(time.Millisecond))
	}
}

func (self *Shell) help() {
	helpFormat := `Commands
  read key [field1 field2 ...] - Read a record
  scan key recordcount [field1 field2 ...] - Scan starting at key
  insert key name1=value1 [name2=value2 ...] - Insert a new record
  update key name1=value1 [name2=value2 ...] - Update a record
  delete key - Delete a record
  traces - Show trace records collected by the adapter, if any
  table [tablename] - Get or [set] the name of the table
  quit - Quit`
	Println(helpFormat)
}

func ExitOnError(format string, args ...interface{}) {
	Errorf(format, args...)
	os.Exit(1)
}
