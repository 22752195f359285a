package ops

import (
	"fmt"
	"sort"
	"strings"

	"github.com/repeale/fp-go"
	opt "github.com/repeale/fp-go/option"
	"github.com/sasha-s/go-deadlock"
)

// ApplyFunc evaluates an operation. epsilon is the configured tolerance for
// operations that compare approximately.
type ApplyFunc func(args []Operand, epsilon float64) (Result, error)

type Operation struct {
	Name        string
	Aliases     []string
	ArgFormat   string
	Description string
	// Whether Apply reads the configured epsilon
	UsesEpsilon bool
	Apply       ApplyFunc
}

func (op *Operation) String() string {
	return fmt.Sprintf("%s %s", op.Name, op.ArgFormat)
}

func (op *Operation) Detailed() string {
	aliases := ""
	if len(op.Aliases) > 0 {
		aliases = fmt.Sprintf(" (alias %s)", strings.Join(op.Aliases, ", "))
	}
	return fmt.Sprintf("%s%s: %s", op.String(), aliases, op.Description)
}

// Registry maps operation names and aliases to operations. It is safe for
// concurrent use.
type Registry struct {
	mutex      deadlock.RWMutex
	operations map[string]*Operation
}

func NewRegistry() *Registry {
	return &Registry{
		operations: make(map[string]*Operation),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Registry) Register(op Operation) error {
	if normalizeName(op.Name) == "" {
		return fmt.Errorf("operation must have a name")
	}

	if op.Apply == nil {
		return fmt.Errorf("operation %s has no apply function", op.Name)
	}

	names := append([]string{op.Name}, op.Aliases...)
	names = fp.Map[string, string](normalizeName)(names)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, name := range names {
		if _, ok := r.operations[name]; ok {
			return fmt.Errorf("operation %s is already registered", name)
		}
	}

	for _, name := range names {
		r.operations[name] = &op
	}

	return nil
}

func (r *Registry) Lookup(name string) opt.Option[*Operation] {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	op, ok := r.operations[normalizeName(name)]
	if !ok {
		return opt.None[*Operation]()
	}

	return opt.Some[*Operation](op)
}

func (r *Registry) Apply(name string, args []Operand, epsilon float64) (Result, error) {
	op := r.Lookup(name)
	if opt.IsNone(op) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	result, err := op.Value.Apply(args, epsilon)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.Value.Name, err)
	}

	return result, nil
}

// Operations returns each registered operation once, sorted by name.
func (r *Registry) Operations() []*Operation {
	r.mutex.RLock()
	seen := make(map[*Operation]struct{})
	operations := make([]*Operation, 0, len(r.operations))
	for _, op := range r.operations {
		if _, ok := seen[op]; ok {
			continue
		}
		seen[op] = struct{}{}
		operations = append(operations, op)
	}
	r.mutex.RUnlock()

	sort.Slice(operations, func(i, j int) bool {
		return operations[i].Name < operations[j].Name
	})
	return operations
}

func (r *Registry) Help() string {
	lines := fp.Map[*Operation, string](func(op *Operation) string {
		return op.Detailed()
	})(r.Operations())
	return strings.Join(lines, "\n")
}
