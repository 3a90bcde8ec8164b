package storage

// Namespace is a view of db holding only the keys under name.
// Key k of the view is stored as name+"\x00"+k, so a view never sees keys of another
// name, even when one name is a prefix of the other.
type Namespace struct {
	db     Database
	name   string
	prefix []byte
	bound  []byte
}

func NewNamespace(db Database, name string) Database {
	return &Namespace{
		db:     db,
		name:   name,
		prefix: append([]byte(name), 0),
		bound:  append([]byte(name), 1),
	}
}

// Close is a no-op, the underlying database belongs to the caller.
func (ns *Namespace) Close() {}

func (ns *Namespace) Name() string {
	return ns.name
}

func (ns *Namespace) key(k []byte) []byte {
	full := make([]byte, len(ns.prefix), len(ns.prefix)+len(k))
	copy(full, ns.prefix)
	return append(full, k...)
}

func (ns *Namespace) Has(key []byte) (bool, error) {
	return ns.db.Has(ns.key(key))
}

func (ns *Namespace) Get(key []byte) ([]byte, error) {
	return ns.db.Get(ns.key(key))
}

func (ns *Namespace) Put(key []byte, value []byte) error {
	return ns.db.Put(ns.key(key), value)
}

func (ns *Namespace) Delete(key []byte) error {
	return ns.db.Delete(ns.key(key))
}

// Iterate visits [start, limit) of the view; nil bounds stop at the edges of the namespace.
func (ns *Namespace) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	end := ns.bound
	if limit != nil {
		end = ns.key(limit)
	}
	n := len(ns.prefix)
	ns.db.Iterate(ns.key(start), end, reverse, func(key, value []byte) bool {
		return callback(key[n:], value)
	})
}

func (ns *Namespace) NewBatch() Batch {
	return &nsBatch{ns: ns, b: ns.db.NewBatch()}
}

func (ns *Namespace) DeleteBatch(b Batch) {
	if nb, ok := b.(*nsBatch); ok {
		ns.db.DeleteBatch(nb.b)
	}
}

type nsBatch struct {
	ns *Namespace
	b  Batch
}

func (b *nsBatch) Write() error {
	return b.b.Write()
}

func (b *nsBatch) Reset() {
	b.b.Reset()
}

func (b *nsBatch) Put(key []byte, value []byte) error {
	return b.b.Put(b.ns.key(key), value)
}

func (b *nsBatch) Delete(key []byte) error {
	return b.b.Delete(b.ns.key(key))
}
