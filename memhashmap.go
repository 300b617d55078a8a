package memhashmap

import (
	"fmt"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"github.com/gostonefire/memhashmap/internal/storage/separatechaining"
	"github.com/gostonefire/memhashmap/internal/utils"
	"github.com/gostonefire/memhashmap/storage"
	"go.uber.org/zap"
)

// Conf - Is a struct to be passed in the call to NewHashMap and contains configuration that affects how keys are
// hashed and stored. The zero value gives Open Addressing with the SimpleAddition hash function (linear probing).
//   - CollisionResolutionTechnique is one of crt.OpenAddressing or crt.SeparateChaining
//   - HashType is one of the built-in hash functions hashfunc.SimpleAddition, hashfunc.Quadratic or hashfunc.Double
//   - HashFunction is an optional custom hash function, if given it is used instead of HashType
//   - StorageStrategy is an optional custom storage, if given it is used instead of CollisionResolutionTechnique and it must have the same capacity as the hash map
//   - Logger is an optional zap logger, if not given nothing is logged
type Conf[V any] struct {
	CollisionResolutionTechnique int
	HashType                     int
	HashFunction                 hashfunc.HashFunction
	StorageStrategy              storage.Strategy[V]
	Logger                       *zap.Logger
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - Capacity is the fixed number of slots (buckets) in the hash map
//   - CollisionResolutionTechnique is the technique in use
//   - InternalHashFunction is true if one of the built-in hash functions is in use
//   - CustomStorage is true if the storage strategy was supplied in Conf
//   - FullProbeCoverage is true if the probe sequence is known to reach every slot, always true for Separate Chaining
type HashMapInfo struct {
	Capacity                     int64
	CollisionResolutionTechnique int
	InternalHashFunction         bool
	CustomStorage                bool
	FullProbeCoverage            bool
}

// HashMapStat - Statistics on the overall usage and distribution over slots
//   - Records is the total number of records stored
//   - Capacity is the number of slots (buckets)
//   - LoadFactor is Records divided by Capacity
//   - UsedSlots is the number of slots holding at least one record
//   - DeletedSlots is the number of slots marked as deleted (Open Addressing only)
//   - MaxSlotLength is the highest number of records in any one slot
//   - AverageSlotLength is the average number of records in used slots
//   - SlotDistribution is the number of records stored in each slot, nil unless asked for
type HashMapStat struct {
	Records           int64
	Capacity          int64
	LoadFactor        float64
	UsedSlots         int64
	DeletedSlots      int64
	MaxSlotLength     int64
	AverageSlotLength float64
	SlotDistribution  []int64
}

// HashMap - The main implementation struct
type HashMap[V any] struct {
	storage      storage.Strategy[V]
	hashFunction hashfunc.HashFunction
	capacity     int64
	size         int64
	info         HashMapInfo
	logger       *zap.Logger
}

// utilizer - Implemented by storage that keeps track of deleted slots
type utilizer interface {
	GetUtilization() (nEmpty, nOccupied, nDeleted int64)
}

// NewHashMap - Returns a new empty hash map with a fixed number of slots.
//   - capacity is the number of slots (buckets), it has to be between 1 and 4294967295
//   - conf is a Conf struct with choice of hash function and collision resolution technique
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[V any](capacity int64, conf Conf[V]) (hashMap *HashMap[V], hashMapInfo HashMapInfo, err error) {
	if err = checkCapacity(capacity); err != nil {
		return
	}

	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// If no HashFunction was given then use the internal one of requested type
	hashFunction := conf.HashFunction
	internalHash := hashFunction == nil
	if internalHash {
		hashFunction, err = newInternalHashFunction(conf.HashType, capacity)
		if err != nil {
			return
		}
	}
	if ts, ok := hashFunction.(hashfunc.TableSizer); ok {
		ts.SetTableSize(capacity)
	}

	// If no StorageStrategy was given then create the one for the requested technique
	strategy := conf.StorageStrategy
	customStorage := strategy != nil
	if customStorage {
		if strategy.GetCapacity() != capacity {
			err = fmt.Errorf("storage strategy capacity %d differs from hash map capacity %d", strategy.GetCapacity(), capacity)
			return
		}
	} else {
		strategy, err = newStorageStrategy[V](conf.CollisionResolutionTechnique, capacity)
		if err != nil {
			return
		}
	}

	hashMapInfo = HashMapInfo{
		Capacity:                     capacity,
		CollisionResolutionTechnique: conf.CollisionResolutionTechnique,
		InternalHashFunction:         internalHash,
		CustomStorage:                customStorage,
		FullProbeCoverage:            fullProbeCoverage(conf.CollisionResolutionTechnique, conf.HashType, internalHash, capacity),
	}

	hashMap = &HashMap[V]{
		storage:      strategy,
		hashFunction: hashFunction,
		capacity:     capacity,
		info:         hashMapInfo,
		logger:       logger,
	}

	logger.Debug("hash map created",
		zap.Int64("capacity", capacity),
		zap.String("crt", crt.Name(conf.CollisionResolutionTechnique)),
		zap.Bool("internalHashFunction", internalHash),
		zap.Bool("customStorage", customStorage),
	)

	if !hashMapInfo.FullProbeCoverage && internalHash && !customStorage {
		logger.Warn("probe sequence does not reach every slot, inserts may fail before the hash map is full",
			zap.Int64("capacity", capacity),
			zap.Int64("suggestedCapacity", suggestedCapacity(conf.HashType, capacity)),
		)
	}

	return
}

// Info - Returns the HashMapInfo that was given when the hash map was created
func (H *HashMap[V]) Info() HashMapInfo {
	return H.info
}

// checkCapacity - Returns an error if capacity is outside permitted range
func checkCapacity(capacity int64) (err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}
	if capacity > conf.MaxCapacity {
		err = fmt.Errorf("capacity can not be higher than %d", conf.MaxCapacity)
		return
	}

	return
}

// newInternalHashFunction - Returns a built-in hash function of given type
func newInternalHashFunction(hashType int, capacity int64) (hashFunction hashfunc.HashFunction, err error) {
	switch hashType {
	case hashfunc.SimpleAddition:
		hashFunction = hash.NewSimpleAdditionHash()
	case hashfunc.Quadratic:
		hashFunction = hash.NewQuadraticHash()
	case hashfunc.Double:
		hashFunction = hash.NewDoubleHash(capacity)
	default:
		err = fmt.Errorf("unknown hash type %d", hashType)
	}

	return
}

// newStorageStrategy - Returns the storage implementation for given collision resolution technique
func newStorageStrategy[V any](technique int, capacity int64) (strategy storage.Strategy[V], err error) {
	switch technique {
	case crt.OpenAddressing:
		strategy, err = openaddressing.NewArrayBasedStorage[V](capacity)
	case crt.SeparateChaining:
		strategy, err = separatechaining.NewSeparateChaining[V](capacity)
	default:
		err = fmt.Errorf("unknown collision resolution technique %d", technique)
	}

	return
}

// fullProbeCoverage - Returns true if the built-in hash function is known to probe every slot for the capacity.
// Nothing is known about custom hash functions.
func fullProbeCoverage(technique, hashType int, internalHash bool, capacity int64) bool {
	if technique == crt.SeparateChaining {
		return true
	}
	if !internalHash {
		return false
	}

	switch hashType {
	case hashfunc.Quadratic:
		return utils.IsPowerOf2(capacity)
	case hashfunc.Double:
		return capacity < 3 || utils.IsPrime(capacity)
	default:
		return true
	}
}

// suggestedCapacity - Returns the nearest capacity equal to or higher than the given that gives full probe coverage
func suggestedCapacity(hashType int, capacity int64) int64 {
	switch hashType {
	case hashfunc.Quadratic:
		return utils.RoundUp2(capacity)
	case hashfunc.Double:
		return utils.NextPrime(capacity)
	default:
		return capacity
	}
}
