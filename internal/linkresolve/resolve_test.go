package linkresolve

import "testing"

func entity(class string) map[string]interface{} {
	return map[string]interface{}{"name": class, "_class": class}
}

func TestResolveRewritesCircuitConnectionPeer(t *testing.T) {
	pole := entity("electric-pole")
	pole["entity_id"] = uint32(100)
	combinator := entity("decider-combinator")
	combinator["entity_id"] = uint32(200)
	combinator["circuit_connections"] = map[string]interface{}{
		"red": []interface{}{
			map[string]interface{}{"entity_id": uint32(100), "circuit_id": 1},
		},
	}

	entities := []map[string]interface{}{pole, combinator}
	if err := Resolve(entities, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	conn := combinator["circuit_connections"].(map[string]interface{})["red"].([]interface{})[0].(map[string]interface{})
	if conn["entity_id"] != 1 {
		t.Fatalf("expected peer entity_id rewritten to 1, got %v", conn["entity_id"])
	}

	if _, present := pole["entity_id"]; present {
		t.Fatal("own entity_id should be deleted after resolve")
	}
	if _, present := pole["_class"]; present {
		t.Fatal("transient _class should be deleted after resolve")
	}
}

func TestResolveDropsCircuitIDOneForNonCombinatorPeer(t *testing.T) {
	pole := entity("electric-pole")
	pole["entity_id"] = uint32(1)
	inserter := entity("inserter")
	inserter["entity_id"] = uint32(2)
	inserter["circuit_connections"] = map[string]interface{}{
		"red": []interface{}{
			map[string]interface{}{"entity_id": uint32(1), "circuit_id": 1},
		},
	}

	entities := []map[string]interface{}{pole, inserter}
	if err := Resolve(entities, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	conn := inserter["circuit_connections"].(map[string]interface{})["red"].([]interface{})[0].(map[string]interface{})
	if _, present := conn["circuit_id"]; present {
		t.Fatal("circuit_id == 1 pointing at a non-combinator peer should be dropped")
	}
}

func TestResolveKeepsCircuitIDOneForCombinatorPeer(t *testing.T) {
	combA := entity("arithmetic-combinator")
	combA["entity_id"] = uint32(1)
	combB := entity("decider-combinator")
	combB["entity_id"] = uint32(2)
	combB["circuit_connections"] = map[string]interface{}{
		"red": []interface{}{
			map[string]interface{}{"entity_id": uint32(1), "circuit_id": 1},
		},
	}

	entities := []map[string]interface{}{combA, combB}
	if err := Resolve(entities, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	conn := combB["circuit_connections"].(map[string]interface{})["red"].([]interface{})[0].(map[string]interface{})
	if _, present := conn["circuit_id"]; !present {
		t.Fatal("circuit_id == 1 pointing at a combinator peer should be kept")
	}
}

func TestResolveRewritesBeltLinkAndNeighbourList(t *testing.T) {
	a := entity("linked-belt")
	a["entity_id"] = uint32(10)
	b := entity("linked-belt")
	b["entity_id"] = uint32(20)
	b["belt_link"] = uint32(10)

	pole1 := entity("electric-pole")
	pole1["entity_id"] = uint32(30)
	pole2 := entity("electric-pole")
	pole2["entity_id"] = uint32(40)
	pole2["neighbours"] = []interface{}{uint32(30)}

	entities := []map[string]interface{}{a, b, pole1, pole2}
	if err := Resolve(entities, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if b["belt_link"] != 1 {
		t.Fatalf("expected belt_link rewritten to entity number 1, got %v", b["belt_link"])
	}
	neighbours := pole2["neighbours"].([]interface{})
	if neighbours[0] != 3 {
		t.Fatalf("expected neighbour rewritten to entity number 3, got %v", neighbours[0])
	}
}

func TestResolveSchedulesLocomotiveList(t *testing.T) {
	loco := entity("locomotive")
	loco["entity_id"] = uint32(5)
	entities := []map[string]interface{}{loco}
	schedules := []interface{}{
		map[string]interface{}{
			"locomotives": []interface{}{uint32(5)},
		},
	}
	if err := Resolve(entities, schedules); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	list := schedules[0].(map[string]interface{})["locomotives"].([]interface{})
	if list[0] != 1 {
		t.Fatalf("expected schedule locomotive rewritten to 1, got %v", list[0])
	}
}

func TestResolveErrorsOnUnresolvedID(t *testing.T) {
	e := entity("inserter")
	e["entity_id"] = uint32(1)
	e["circuit_connections"] = map[string]interface{}{
		"red": []interface{}{
			map[string]interface{}{"entity_id": uint32(999), "circuit_id": 2},
		},
	}
	if err := Resolve([]map[string]interface{}{e}, nil); err == nil {
		t.Fatal("expected error for unresolved raw entity id")
	}
}
