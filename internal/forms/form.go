package forms

import "sync"

// Form tracks field values alongside their validation errors. Setting a
// field's value clears that field's error immediately, independent of when
// the form is next validated — matching the platform's edit behavior.
type Form struct {
	mu     sync.Mutex
	values map[string]string
	errors map[string]string
}

func NewForm() *Form {
	return &Form{
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	delete(f.errors, field)
}

func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

func (f *Form) Error(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

// SetErrors replaces the error map, typically with a validation result.
func (f *Form) SetErrors(errors map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = make(map[string]string, len(errors))
	for field, message := range errors {
		f.errors[field] = message
	}
}

// Valid reports whether any field currently carries an error.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}
