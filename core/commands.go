package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search returns the commands matching the query in the given scope. Enabled
// commands sort before disabled ones, and a name or id that starts with the
// query sorts before a mere substring hit, so typing "rep" surfaces
// replay-step ahead of anything that only mentions replay.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	rank := make(map[string]int, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		name := strings.ToLower(c.Name)
		h := name + " " + strings.ToLower(c.Description) + " " + c.ID
		if q != "" && !strings.Contains(h, q) {
			continue
		}
		rank[c.ID] = 1
		if q == "" || strings.HasPrefix(name, q) || strings.HasPrefix(c.ID, q) {
			rank[c.ID] = 0
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if ra, rb := rank[a.CommandID], rank[b.CommandID]; ra != rb {
			return cmp.Compare(ra, rb)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		if hint := r.nearestID(id); hint != "" {
			return StatusCmd(fmt.Sprintf("Unknown command %q (did you mean %q?)", id, hint))
		}
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// nearestID suggests a registered command id within a small edit distance.
func (r *CommandRegistry) nearestID(id string) string {
	target := strings.ToLower(strings.TrimSpace(id))
	if target == "" {
		return ""
	}
	ids := make([]string, 0, len(r.commands))
	for cid := range r.commands {
		ids = append(ids, cid)
	}
	slices.Sort(ids)
	best := ""
	bestDist := 4 // suggestions beyond 3 edits are noise
	for _, cid := range ids {
		d := levenshtein.ComputeDistance(target, cid)
		if d < bestDist {
			best = cid
			bestDist = d
		}
	}
	return best
}
