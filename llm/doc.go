// Package llm defines the language-model invocation contract shared by the
// planner, worker, and solver. Concrete clients live under providers/.
package llm
