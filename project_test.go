package anydict_test

import (
	"strconv"
	"testing"

	anydict "github.com/any-collections/anydict"
)

type hostPort struct {
	Host string
	Port int
}

func (h hostPort) String() string { return h.Host + ":" + strconv.Itoa(h.Port) }

func TestProjectString(t *testing.T) {
	p := anydict.ProjectString[species]()
	if got := p("canine"); got != "canine" {
		t.Errorf("ProjectString = %q; want canine", got)
	}
}

func TestProjectInt(t *testing.T) {
	p := anydict.ProjectInt[userID]()
	if got := p(42); got != "42" {
		t.Errorf("ProjectInt(42) = %q; want 42", got)
	}
	if got := p(-7); got != "-7" {
		t.Errorf("ProjectInt(-7) = %q; want -7", got)
	}
}

func TestProjectUint(t *testing.T) {
	type port uint16
	p := anydict.ProjectUint[port]()
	if got := p(8080); got != "8080" {
		t.Errorf("ProjectUint(8080) = %q; want 8080", got)
	}
}

func TestProjectStringer(t *testing.T) {
	p := anydict.ProjectStringer[hostPort]()
	if got := p(hostPort{"db", 5432}); got != "db:5432" {
		t.Errorf("ProjectStringer = %q; want db:5432", got)
	}

	d := anydict.New[hostPort, bool](p).
		Set(hostPort{"web", 80}, true).
		Set(hostPort{"db", 5432}, true)
	keys := d.Keys()
	if keys[0].Host != "db" || keys[1].Host != "web" {
		t.Errorf("keys out of order: %v", keys)
	}
}
