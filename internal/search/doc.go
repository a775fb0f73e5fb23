// Package search implements the debounced, category-aware FAQ search used by
// the browser view.
//
// An Engine owns the search state for one view: the raw query typed so far,
// the committed query that filtering actually uses, and the selected
// category. Raw input is committed only after the configured debounce delay
// passes without further input; ClearSearch and Commit bypass the delay.
//
// Basic usage:
//
//	engine := search.New(entries,
//		search.WithDebounce(300*time.Millisecond),
//		search.WithOnCommit(func(q string) { program.Send(committedMsg{q}) }),
//	)
//	defer engine.Close()
//
//	engine.SetQuery("hem")
//	engine.SetSelectedCategory("Repairs")
//	view := engine.View()
//
// The result list is a pure function of the records, the selected category
// and the committed query. Filtering keeps records whose question, answer or
// tags contain the query (case-insensitive) once the trimmed query reaches
// the minimum search length; surviving records are ordered by Score, with
// equal scores kept in catalog order.
package search
