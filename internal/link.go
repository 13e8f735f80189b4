package internal

// Link is a bidirectional dependency edge between a source and a subscriber.
// It lives in two intrusive doubly-linked lists at once: the subscriber's
// dependency list and the source's subscription list.
type Link struct {
	dep Source
	sub Subscriber

	prevDep *Link
	nextDep *Link

	prevSub *Link
	nextSub *Link
}

// link records that sub read dep during its current run.
func link(sub Subscriber, dep Source) {
	sn := sub.base()
	dn := dep.base()

	// skip if this run already created the edge
	for l := sn.deps; l != nil; l = l.nextDep {
		if l.dep == dep {
			return
		}
	}

	l := &Link{
		dep:     dep,
		sub:     sub,
		prevDep: sn.depsTail,
		prevSub: dn.subsTail,
	}

	if sn.depsTail != nil {
		sn.depsTail.nextDep = l
	} else {
		sn.deps = l
	}
	sn.depsTail = l

	if dn.subsTail != nil {
		dn.subsTail.nextSub = l
	} else {
		dn.subs = l
	}
	dn.subsTail = l

	if dn.height >= sn.height {
		sn.height = dn.height + 1
	}
}

// unlinkDep removes the edge from its source's subscription list and returns
// the subscriber's next dependency link.
func unlinkDep(l *Link) *Link {
	dn := l.dep.base()
	nextDep := l.nextDep

	if l.nextSub != nil {
		l.nextSub.prevSub = l.prevSub
	} else {
		dn.subsTail = l.prevSub
	}

	if l.prevSub != nil {
		l.prevSub.nextSub = l.nextSub
	} else {
		dn.subs = l.nextSub
	}

	return nextDep
}
