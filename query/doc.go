// Package query answers the four supervisor lookups over a record.Store.
//
// Each operation scans the whole store once, applies the match rules per
// field, and returns an [Outcome]. A lookup that finds nothing is not an
// error: it returns an Outcome with Success false and a message naming the
// parameters that did not resolve.
//
//	engine := query.New(store)
//
//	depts := engine.ListDepartments("北京大学")
//	if !depts.Success {
//	    fmt.Println(depts.Message)
//	}
//
//	reviews := engine.GetReviews("北京大学", "计算机学院", "张三")
//
// Records returned by [Engine.FindBySupervisorName] and [Engine.GetReviews]
// have passed through [FormatRecord]; the store's own records are never
// handed out.
//
// # Thread Safety
//
// Engine holds no mutable state and is safe for concurrent use.
package query
