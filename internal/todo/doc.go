// Package todo loads, validates, and mutates the pydo document.
//
// The document (pydo.td) is a single JSON object:
//
//	{
//	  "remember-header": "\n REMEMBER\n --------",
//	  "remember-items": [{"item": "call mom"}],
//	  "header": "\n TODO\n ----",
//	  "tasks": [{"task": "buy milk", "completed": false}],
//	  "completed-tasks": 0,
//	  "unfinished-tasks": 1
//	}
//
// # Mutations
//
// Every mutation addresses entries by index. An index outside the list is a
// no-op and reports changed=false, so callers can skip the write and leave
// the file untouched.
//
//   - Add / Remember append to the end of their list
//   - Complete toggles the completed flag
//   - Remove / RemoveRemember delete a single entry
//   - RemoveCompleted drops every completed task, keeping the order of the rest
//   - Reset replaces the document with the empty template
//
// # Counters
//
// completed-tasks and unfinished-tasks are recomputed from the task list on
// every save. A file edited by hand may carry counters that disagree with its
// tasks; such a file loads unchanged and is corrected by the next write.
//
// # File Format
//
// When writing the document, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Key order of the empty template
//   - Empty lists written as [] rather than null
package todo
