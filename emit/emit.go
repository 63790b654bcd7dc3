package emit

// An Emitter dispatches payloads of type T to handlers keyed by topic.
// The zero value is ready to use.
type Emitter[T any] struct {
	handlers map[string][]subscriber[T]
	nextID   int
}

type subscriber[T any] struct {
	id   int
	once bool
	fn   func(T)
}

// New creates an empty Emitter.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// On subscribes fn to a topic. It returns an unsubscribe function;
// calling it more than once is harmless.
func (e *Emitter[T]) On(topic string, fn func(T)) func() {
	return e.subscribe(topic, fn, false)
}

// Once subscribes fn to a topic for a single delivery. The returned
// unsubscribe function cancels the subscription if it has not fired yet.
func (e *Emitter[T]) Once(topic string, fn func(T)) func() {
	return e.subscribe(topic, fn, true)
}

func (e *Emitter[T]) subscribe(topic string, fn func(T), once bool) func() {
	if e.handlers == nil {
		e.handlers = make(map[string][]subscriber[T])
	}
	e.nextID++
	id := e.nextID
	e.handlers[topic] = append(e.handlers[topic], subscriber[T]{id: id, once: once, fn: fn})
	return func() {
		e.remove(topic, id)
	}
}

func (e *Emitter[T]) remove(topic string, id int) {
	subs := e.handlers[topic]
	for i, s := range subs {
		if s.id == id {
			e.handlers[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit delivers v to every handler currently subscribed to the topic,
// in subscription order. Handlers may subscribe or unsubscribe during
// delivery; such changes take effect for the next Emit. Once-handlers
// are removed before their delivery.
func (e *Emitter[T]) Emit(topic string, v T) {
	subs := e.handlers[topic]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscriber[T], len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		if s.once {
			e.remove(topic, s.id)
		}
		s.fn(v)
	}
	tracer().Debugf("emitted %q to %d handler(s)", topic, len(snapshot))
}

// Len returns the number of handlers subscribed to a topic.
func (e *Emitter[T]) Len(topic string) int {
	return len(e.handlers[topic])
}
