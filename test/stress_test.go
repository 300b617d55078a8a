//go:build stress

package test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	key   string
	value int
}

func createTestdata(amount int, offset int) []testRecord {
	data := make([]testRecord, amount)
	for i := range data {
		data[i] = testRecord{key: uuid.NewString(), value: offset + i}
	}

	return data
}

func setTestdata(data []testRecord, hm *memhashmap.HashMap[int]) error {
	for _, r := range data {
		if err := hm.Set(r.key, r.value); err != nil {
			return err
		}
	}

	return nil
}

func popTestdata(data []testRecord, hm *memhashmap.HashMap[int]) error {
	for _, r := range data {
		value, found := hm.Pop(r.key)
		if !found {
			return fmt.Errorf("key %s not found for pop", r.key)
		}
		if value != r.value {
			return fmt.Errorf("popped wrong value for key %s", r.key)
		}
	}

	return nil
}

func getTestdata(data []testRecord, hm *memhashmap.HashMap[int], shouldNotExist bool) error {
	for _, r := range data {
		value, found := hm.Get(r.key)
		if shouldNotExist {
			if found {
				return fmt.Errorf("get should not get data for key %s", r.key)
			}
		} else {
			if !found {
				return fmt.Errorf("key %s not found", r.key)
			}
			if value != r.value {
				return fmt.Errorf("got wrong value for key %s", r.key)
			}
		}
	}

	return nil
}

type TestCaseStressTest struct {
	name      string
	capacity  int64
	crt       int
	hashType  int
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{name: "SeparateChaining", capacity: 100000, crt: crt.SeparateChaining, hashType: hashfunc.Double, nTestdata: 300000},
			{name: "QuadraticProbing", capacity: 262144, crt: crt.OpenAddressing, hashType: hashfunc.Quadratic, nTestdata: 60000},
			{name: "DoubleHashing", capacity: 200003, crt: crt.OpenAddressing, hashType: hashfunc.Double, nTestdata: 60000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of sets and pops for %s", test.name), func(t *testing.T) {
				// Prepare test data
				testdata1 := createTestdata(test.nTestdata, 0)
				testdata2 := createTestdata(test.nTestdata, test.nTestdata)
				testdata3 := createTestdata(test.nTestdata, 2*test.nTestdata)

				// Prepare hash map
				hm, info, err := memhashmap.NewHashMap[int](test.capacity, memhashmap.Conf[int]{
					CollisionResolutionTechnique: test.crt,
					HashType:                     test.hashType,
				})
				require.NoError(t, err, "create hash map")
				assert.True(t, info.FullProbeCoverage, "probe sequence reaches every slot")

				// Set first two sets of test data
				err = setTestdata(testdata1, hm)
				assert.NoError(t, err, "set test set 1")
				err = setTestdata(testdata2, hm)
				assert.NoError(t, err, "set test set 2")

				// Remove first set from hash map
				err = popTestdata(testdata1, hm)
				assert.NoError(t, err, "pop test set 1")

				// Set third set of test data
				err = setTestdata(testdata3, hm)
				assert.NoError(t, err, "set test set 3")

				// Check all three test sets
				err = getTestdata(testdata1, hm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(testdata2, hm, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(testdata3, hm, false)
				assert.NoError(t, err, "get test set 3")

				// Remove second set from hash map
				err = popTestdata(testdata2, hm)
				assert.NoError(t, err, "pop test set 2")

				// Check all three test sets
				err = getTestdata(testdata1, hm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(testdata2, hm, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(testdata3, hm, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat := hm.Stat(true)
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Equal(t, int64(test.nTestdata), hm.Size(), "size matches records")
				assert.Len(t, hm.Values(), test.nTestdata, "one value per record")

				var sum int64
				for _, n := range stat.SlotDistribution {
					sum += n
				}
				assert.Equal(t, int64(test.nTestdata), sum, "distribution accounts for every record")
			})
		}
	})
}
