package object

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func TestReadWaitConditionsTimeType(t *testing.T) {
	idx := prototype.NewIndex(prototype.DefaultClassTable())
	buf := []byte{
		0x01, 0x00, 0x00, 0x00, // count32 = 1
		0x00,                   // type index 0 = "time"
		0x01,                   // compare_type index 1 = "or"
		0xE8, 0x03, 0x00, 0x00, // ticks = 1000
	}
	conds, err := ReadWaitConditions(stream.New(buf), idx)
	if err != nil {
		t.Fatalf("ReadWaitConditions: %v", err)
	}
	if len(conds) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(conds))
	}
	wc := conds[0].(map[string]interface{})
	if wc["type"] != "time" || wc["compare_type"] != "or" || wc["ticks"] != uint32(1000) {
		t.Fatalf("unexpected wait condition: %+v", wc)
	}
}

func TestReadStationsPre1143IgnoresRailDirectionBytes(t *testing.T) {
	idx := prototype.NewIndex(prototype.DefaultClassTable())
	vctx := version.NewContext()
	restore := vctx.Push(version.V_1_1_0_0)
	defer restore()

	buf := []byte{
		0x01, 0x00, 0x00, 0x00, // station count32 = 1
		0x04, 's', 't', 'o', 'p', // name "stop"
		0x00, 0x00, 0x00, 0x00, // wait conditions count32 = 0
		0x01,                   // temporary = true
		0x00, 0x00, 0x00, 0x00, // 4 meaningless bytes, pre-1.1.43
	}
	stations, err := ReadStations(stream.New(buf), idx, vctx)
	if err != nil {
		t.Fatalf("ReadStations: %v", err)
	}
	station := stations[0].(map[string]interface{})
	if station["station"] != "stop" || station["temporary"] != true {
		t.Fatalf("unexpected station: %+v", station)
	}
	if _, present := station["rail_direction"]; present {
		t.Fatal("rail_direction should not be surfaced before V_1_1_43_0")
	}
}
