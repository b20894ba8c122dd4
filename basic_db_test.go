package ycsb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBasicDBInitDefaults(t *testing.T) {
	db := NewBasicDB()
	db.SetProperties(NewProperties())
	require.NoError(t, db.Init())
	require.True(t, db.verbose)
	require.Equal(t, int64(0), db.toDelayMs)
	require.True(t, db.randomizeDelay)
}

func TestBasicDBOperationsReturnOK(t *testing.T) {
	db := NewBasicDB()
	db.SetProperties(NewProperties())
	require.NoError(t, db.Init())

	_, status := db.Read("usertable", "key1", []string{"field1"}, nil)
	require.Equal(t, StatusOK, status)

	_, status = db.Scan("usertable", "key1", 10, nil)
	require.Equal(t, StatusOK, status)

	status = db.Update("usertable", "key1", KVMap{"field1": []byte("v")})
	require.Equal(t, StatusOK, status)

	status = db.Insert("usertable", "key1", KVMap{"field1": []byte("v")}, nil)
	require.Equal(t, StatusOK, status)

	status = db.Delete("usertable", "key1")
	require.Equal(t, StatusOK, status)

	require.Nil(t, db.Traces())

	require.NoError(t, db.Cleanup())
}

func TestBasicDBFixedDelay(t *testing.T) {
	db := NewBasicDB()
	props := NewProperties()
	props.Add(ConfigSimulateDelay, "20")
	props.Add(ConfigRandomizeDelay, "false")
	db.SetProperties(props)
	require.NoError(t, db.Init())

	start := time.Now()
	db.Read("usertable", "key1", nil, nil)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestConcatFieldsAndKV(t *testing.T) {
	require.Equal(t, "<all fields>", concatFieldsStr(nil))
	require.Equal(t, "a, b", concatFieldsStr([]string{"a", "b"}))
	require.Equal(t, "k=v", concatKVStr(KVMap{"k": []byte("v")}))
}
