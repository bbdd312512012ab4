package form

import "iter"

// Data is a single form entry. Type and Charset are never empty: parts which don't specify
// them get the configured defaults.
type Data struct {
	Name     string
	Filename string
	Type     string
	Charset  string
	Value    string
}

// IsFile reports whether the entry was submitted as a file.
func (d Data) IsFile() bool {
	return len(d.Filename) > 0
}

// Form is an ordered sequence of entries. Names may repeat.
type Form []Data

// Name looks up the entry submitted under the name. When the name repeats, as with
// multiple selects or several files in a single input, the earliest entry is returned.
func (f Form) Name(name string) (Data, bool) {
	for data := range f.Names(name) {
		return data, true
	}

	return Data{}, false
}

// Names iterates over every entry submitted under the name, in the order of the body.
func (f Form) Names(name string) iter.Seq[Data] {
	return func(yield func(Data) bool) {
		for _, entry := range f {
			if entry.Name == name {
				if !yield(entry) {
					break
				}
			}
		}
	}
}

// File looks up the entry uploaded from the client-side file of that name. Entries which
// aren't files have an empty filename, so File("") matches the earliest plain field.
func (f Form) File(name string) (Data, bool) {
	for data := range f.Files(name) {
		return data, true
	}

	return Data{}, false
}

// Files iterates over every entry with the given filename, in the order of the body.
func (f Form) Files(name string) iter.Seq[Data] {
	return func(yield func(Data) bool) {
		for _, entry := range f {
			if entry.Filename == name {
				if !yield(entry) {
					break
				}
			}
		}
	}
}
