package tree

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// PartitionMap groups records by the value of one attribute. Groups iterate
// in the order their value first appeared, and records keep their relative
// order inside a group. No group is empty.
type PartitionMap struct {
	groups *linkedhashmap.Map
	total  int
}

type group struct {
	records []dataset.Record
}

func newPartitionMap() *PartitionMap {
	return &PartitionMap{groups: linkedhashmap.New()}
}

func (p *PartitionMap) add(value string, r dataset.Record) {
	p.total++
	if g, ok := p.groups.Get(value); ok {
		g.(*group).records = append(g.(*group).records, r)
		return
	}
	p.groups.Put(value, &group{records: []dataset.Record{r}})
}

// Len returns the number of distinct values.
func (p *PartitionMap) Len() int {
	return p.groups.Size()
}

// Total returns the number of records across all groups.
func (p *PartitionMap) Total() int {
	return p.total
}

// Values returns the distinct values in first-seen order.
func (p *PartitionMap) Values() []string {
	keys := p.groups.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

// Get returns the records holding value.
func (p *PartitionMap) Get(value string) ([]dataset.Record, bool) {
	g, ok := p.groups.Get(value)
	if !ok {
		return nil, false
	}
	return g.(*group).records, true
}

// Each calls fn for every group in first-seen order.
func (p *PartitionMap) Each(fn func(value string, records []dataset.Record)) {
	it := p.groups.Iterator()
	for it.Next() {
		fn(it.Key().(string), it.Value().(*group).records)
	}
}

// SplitInstances partitions records by their value at attributeIndex, which
// must address a position of every record.
func SplitInstances(records []dataset.Record, attributeIndex int) (*PartitionMap, error) {
	if err := dataset.Validate(records, attributeIndex); err != nil {
		return nil, err
	}
	return splitInstances(records, attributeIndex), nil
}

func splitInstances(records []dataset.Record, attributeIndex int) *PartitionMap {
	p := newPartitionMap()
	for _, r := range records {
		p.add(r[attributeIndex], r)
	}
	return p
}

// PartitionInstances deals records round-robin into n groups: record j goes
// to group j mod n. Groups may be empty when n exceeds len(records).
func PartitionInstances(records []dataset.Record, n int) ([][]dataset.Record, error) {
	if n < 1 {
		return nil, errors.NewValidationError("numPartitions", "must be at least 1", n)
	}
	parts := make([][]dataset.Record, n)
	for j, r := range records {
		parts[j%n] = append(parts[j%n], r)
	}
	return parts, nil
}
