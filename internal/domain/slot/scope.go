package slot

// Scope selects which reservation set a slot id lives in. The zero value is the
// legacy global scope, which blocks a slot for every package of a date and location.
type Scope struct {
	pkg string
}

func Global() Scope { return Scope{} }

// Scoped returns the package scope for pkg. An empty pkg yields Global.
func Scoped(pkg string) Scope { return Scope{pkg: pkg} }

func (s Scope) IsGlobal() bool { return s.pkg == "" }

func (s Scope) Package() (string, bool) {
	return s.pkg, s.pkg != ""
}

func (s Scope) String() string {
	if s.IsGlobal() {
		return "global"
	}
	return "package:" + s.pkg
}

// Key identifies one reservation record.
type Key struct {
	Date     Date
	Location string
	Scope    Scope
}

func NewKey(date Date, location string, scope Scope) Key {
	return Key{Date: date, Location: location, Scope: scope}
}

// Coarse returns the global key for the same date and location.
func (k Key) Coarse() Key {
	return Key{Date: k.Date, Location: k.Location, Scope: Global()}
}

func (k Key) String() string {
	return k.Date.String() + "/" + k.Location + "/" + k.Scope.String()
}

// Entry is one slot id inside one reservation record.
type Entry struct {
	Key    Key
	SlotID string
	// OrderID is set when the entry was derived from an order.
	OrderID string
}
