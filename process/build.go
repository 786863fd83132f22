package process

import (
	"fmt"
	"sort"

	"github.com/forgekit/plantlayout/spec"
)

// Build derives the process graph from a Specification and a target part
// list, per spec.md §4.3. Station and storage iteration order is the sorted
// order of map keys, so two calls with the same inputs produce identical
// Stations/Storages/Routing/Paths slices (Testable Property 8).
func Build(s *spec.Specification, targetParts []string) (*Graph, error) {
	required, err := s.RequiredActivities(targetParts)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		StationIndex:       make(map[string]int, len(s.Stations)),
		RequiredActivities: required,
	}

	stationNames := sortedKeys(s.Stations)
	for _, name := range stationNames {
		m := s.Stations[name]
		idx := len(g.Stations)
		g.StationIndex[name] = idx
		node := StationNode{
			Name:         name,
			HasTransport: m.HasTransport(),
		}
		if m.Transport != nil {
			node.TransportRange = m.Transport.Range
		}
		g.Stations = append(g.Stations, node)
		for _, storage := range m.Storage {
			sIdx := len(g.Storages)
			g.Storages = append(g.Storages, StorageNode{
				StationIdx: idx,
				SlotID:     storage.ID,
				Place:      storage.Place,
			})
			g.Stations[idx].StorageIdx = append(g.Stations[idx].StorageIdx, sIdx)
		}
	}

	g.buildRoutingEdges(s, stationNames)
	g.buildPathEdges(s)

	return g, nil
}

// buildRoutingEdges implements spec.md §4.3 step 3: for every (transport
// station T, storage station S, storage slot Z with storage type K), if
// K.Part is in T's transport parts, emit an Input edge when K.Add and an
// Output edge when K.Remove, de-duplicated by (part, T, Z, direction).
func (g *Graph) buildRoutingEdges(s *spec.Specification, stationNames []string) {
	seen := make(map[string]struct{})
	for _, tName := range stationNames {
		t := s.Stations[tName]
		if t.Transport == nil {
			continue
		}
		tIdx := g.StationIndex[tName]
		for _, sName := range stationNames {
			station := s.Stations[sName]
			for _, storage := range station.Storage {
				zIdx := g.storageIndexOf(sName, storage.ID)
				for _, k := range storage.Types {
					if _, ok := t.Transport.Parts[k.Part]; !ok {
						continue
					}
					if k.Add {
						g.addRoutingEdge(seen, k.Part, tIdx, zIdx, Input)
					}
					if k.Remove {
						g.addRoutingEdge(seen, k.Part, tIdx, zIdx, Output)
					}
				}
			}
		}
	}
}

// storageIndexOf resolves the Graph storage index for a given station name
// and slot ID. Unreachable to return -1 for a Graph built by Build, since
// every storage slot was registered into Graph.Storages beforehand.
func (g *Graph) storageIndexOf(stationName, slotID string) int {
	stationIdx := g.StationIndex[stationName]
	for _, idx := range g.Stations[stationIdx].StorageIdx {
		if g.Storages[idx].SlotID == slotID {
			return idx
		}
	}
	return -1
}

func (g *Graph) addRoutingEdge(seen map[string]struct{}, part string, transportIdx, storageIdx int, dir Direction) {
	key := fmt.Sprintf("%s|%d|%d|%s", part, transportIdx, storageIdx, dir)
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	g.Routing = append(g.Routing, RoutingEdge{
		Part:         part,
		TransportIdx: transportIdx,
		StorageIdx:   storageIdx,
		Direction:    dir,
	})
}

// buildPathEdges implements spec.md §4.3 step 4: for every pair of storage
// slots across different stations with a matching part P, emit a PathEdge
// in the producing direction, de-duplicated.
func (g *Graph) buildPathEdges(s *spec.Specification) {
	seen := make(map[string]struct{})
	for i := range g.Storages {
		for j := range g.Storages {
			if i == j || g.Storages[i].StationIdx == g.Storages[j].StationIdx {
				continue
			}
			for _, t1 := range stationStorageTypes(s, g, i) {
				for _, t2 := range stationStorageTypes(s, g, j) {
					if t1.Part != t2.Part {
						continue
					}
					if t1.Add && t2.Remove {
						g.addPathEdge(seen, t1.Part, j, i)
					}
					if t1.Remove && t2.Add {
						g.addPathEdge(seen, t1.Part, i, j)
					}
				}
			}
		}
	}
}

func stationStorageTypes(s *spec.Specification, g *Graph, storageIdx int) []spec.StorageType {
	st := g.Storages[storageIdx]
	stationName := g.Stations[st.StationIdx].Name
	for _, storage := range s.Stations[stationName].Storage {
		if storage.ID == st.SlotID {
			return storage.Types
		}
	}
	return nil
}

func (g *Graph) addPathEdge(seen map[string]struct{}, part string, origin, destiny int) {
	key := fmt.Sprintf("%s|%d|%d", part, origin, destiny)
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	g.Paths = append(g.Paths, PathEdge{Part: part, Origin: origin, Destiny: destiny})
}

func sortedKeys(m map[string]*spec.StationModel) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
