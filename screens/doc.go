// Package screens holds modal screens pushed onto the core screen stack.
package screens
