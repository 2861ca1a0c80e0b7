// Package production provides the integrations around the engine: run
// reports in text, JSON and YAML, Graphviz export of an automaton, and
// step tracers.
package production
