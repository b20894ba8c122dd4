package binding

import (
	"github.com/benchctl/ycsb"
)

func init() {
	AddBindings()
}

func AddBindings() {
	ycsb.Databases["mysql"] = func() ycsb.DB {
		return NewMysqlDB()
	}
}
