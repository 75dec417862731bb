package engine

import (
	"sort"

	"payreport/pkg/schema"
)

// DepartmentOrder is the fixed display order for known departments. Any
// other department is listed after these, alphabetically.
var DepartmentOrder = []string{"Design", "HR", "Marketing", "Sales"}

// DepartmentIndex groups records by department.
type DepartmentIndex struct {
	ByDepartment map[string][]*schema.Record `json:"byDepartment"`
	Order        []string                    `json:"order"`
	Stats        IndexStats                  `json:"stats"`
}

// IndexStats contains aggregate statistics about the index.
type IndexStats struct {
	TotalRecords int `json:"totalRecords"`
	Departments  int `json:"departments"`
}

// BuildDepartmentIndex groups records by department, sorts each group by
// name and computes the department display order. Records are referenced,
// not copied; the index never modifies them.
func BuildDepartmentIndex(records []schema.Record) *DepartmentIndex {
	index := &DepartmentIndex{
		ByDepartment: make(map[string][]*schema.Record),
	}

	for i := range records {
		rec := &records[i]
		if _, exists := index.ByDepartment[rec.Department]; !exists {
			index.Order = append(index.Order, rec.Department)
		}
		index.ByDepartment[rec.Department] = append(index.ByDepartment[rec.Department], rec)
	}

	// Stable so that equal names keep their input order.
	for _, members := range index.ByDepartment {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Name < members[j].Name
		})
	}

	sort.Slice(index.Order, func(i, j int) bool {
		return departmentLess(index.Order[i], index.Order[j])
	})

	index.Stats = IndexStats{
		TotalRecords: len(records),
		Departments:  len(index.Order),
	}

	return index
}

// Members returns the sorted records of a department.
func (idx *DepartmentIndex) Members(department string) []*schema.Record {
	return idx.ByDepartment[department]
}

// departmentLess orders by position in DepartmentOrder, with unknown
// departments ranked after all known ones, then by name.
func departmentLess(a, b string) bool {
	ra, rb := departmentRank(a), departmentRank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}

func departmentRank(department string) int {
	for i, d := range DepartmentOrder {
		if d == department {
			return i
		}
	}
	return len(DepartmentOrder)
}
