package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/roversim/server/internal/geo"
	"github.com/roversim/server/internal/object"
)

// Engine wraps a single gopher-lua VM for unit behavior scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	reg *object.Registry
	log *zap.Logger
}

// NewEngine creates a Lua engine bound to a registry and loads all scripts
// from the given directory. Radar queries are exposed to scripts as the
// `radar` and `find_nearest` globals.
func NewEngine(scriptsDir string, reg *object.Registry, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, reg: reg, log: log}
	e.registerAPI()

	corePath := filepath.Join(scriptsDir, "core")
	if err := e.loadDir(corePath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load core scripts: %w", err)
	}
	aiPath := filepath.Join(scriptsDir, "ai")
	if err := e.loadDir(aiPath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load ai scripts: %w", err)
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

func (e *Engine) registerAPI() {
	e.vm.SetGlobal("radar", e.vm.NewFunction(e.luaRadar))
	e.vm.SetGlobal("find_nearest", e.vm.NewFunction(e.luaFindNearest))
}

// luaRadar implements radar{...}: a table of query parameters in, the best
// match (or nil) out.
func (e *Engine) luaRadar(L *lua.LState) int {
	t := L.CheckTable(1)

	var from object.Object
	if v := t.RawGetString("from"); v != lua.LNil {
		from = e.reg.ByID(int(lua.LVAsNumber(v)))
	}

	q := object.RadarQuery{
		Angle:     float64(lua.LVAsNumber(t.RawGetString("angle"))),
		Focus:     geo.FullCircle,
		MaxDist:   1000,
		MinDist:   float64(lua.LVAsNumber(t.RawGetString("min_dist"))),
		Furthest:  t.RawGetString("furthest") == lua.LTrue,
		Normalize: t.RawGetString("normalize") != lua.LFalse, // default on for scripts
	}
	if v := t.RawGetString("focus"); v != lua.LNil {
		q.Focus = float64(lua.LVAsNumber(v))
	}
	if v := t.RawGetString("max_dist"); v != lua.LNil {
		q.MaxDist = float64(lua.LVAsNumber(v))
	}

	if typesVal, ok := t.RawGetString("types").(*lua.LTable); ok {
		typesVal.ForEach(func(_, v lua.LValue) {
			if typ, ok := object.ParseObjectType(lua.LVAsString(v)); ok {
				q.Types = append(q.Types, typ)
			}
		})
	}

	q.Filter.Team = int(lua.LVAsNumber(t.RawGetString("team")))
	switch lua.LVAsString(t.RawGetString("flight")) {
	case "landed":
		q.Filter.Flight = object.FlightLandedOnly
	case "flying":
		q.Filter.Flight = object.FlightFlyingOnly
	}
	if allVal, ok := t.RawGetString("allegiance").(*lua.LTable); ok {
		allVal.ForEach(func(_, v lua.LValue) {
			switch lua.LVAsString(v) {
			case "neutral":
				q.Filter.Allegiance |= object.AllegianceNeutral
			case "friendly":
				q.Filter.Allegiance |= object.AllegianceFriendly
			case "enemy":
				q.Filter.Allegiance |= object.AllegianceEnemy
			}
		})
	}

	best := e.reg.Radar(from, q)
	if best == nil {
		L.Push(lua.LNil)
		return 1
	}
	var origin mgl64.Vec3
	if from != nil {
		origin = from.Position()
	}
	L.Push(e.objectTable(best, origin))
	return 1
}

// luaFindNearest implements find_nearest(from_id, max_dist [, type_name...]).
func (e *Engine) luaFindNearest(L *lua.LState) int {
	from := e.reg.ByID(L.CheckInt(1))
	maxDist := float64(L.CheckNumber(2))

	var types []object.ObjectType
	for i := 3; i <= L.GetTop(); i++ {
		if typ, ok := object.ParseObjectType(L.CheckString(i)); ok {
			types = append(types, typ)
		}
	}

	best := e.reg.FindNearest(from, maxDist, types...)
	if best == nil {
		L.Push(lua.LNil)
		return 1
	}
	var origin mgl64.Vec3
	if from != nil {
		origin = from.Position()
	}
	L.Push(e.objectTable(best, origin))
	return 1
}

func (e *Engine) objectTable(obj object.Object, origin mgl64.Vec3) *lua.LTable {
	pos := obj.Position()
	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(obj.ID()))
	t.RawSetString("type", lua.LString(obj.Type().String()))
	t.RawSetString("team", lua.LNumber(obj.Team()))
	t.RawSetString("x", lua.LNumber(pos.X()))
	t.RawSetString("z", lua.LNumber(pos.Z()))
	t.RawSetString("distance", lua.LNumber(geo.DistanceProjected(origin, pos)))
	return t
}

// BehaviorContext holds pre-packed data for one scripted unit's tick.
type BehaviorContext struct {
	ID      int
	Type    string
	Team    int
	X, Z    float64
	Heading float64
	Energy  float64
	Flying  bool // unit has the flight capability
	Landed  bool
}

// Command is a single action returned by Lua behavior.
type Command struct {
	Type  string  // "turn", "advance", "takeoff", "land", "detonate", "idle"
	Angle float64 // turn delta (clockwise)
	Dist  float64 // advance distance in world units
}

// RunUnitBehavior calls Lua unit_behavior(ctx) and returns the commands to
// execute. A missing function or script error yields no commands.
func (e *Engine) RunUnitBehavior(ctx BehaviorContext) []Command {
	fn := e.vm.GetGlobal("unit_behavior")
	if fn == lua.LNil {
		return nil
	}

	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(ctx.ID))
	t.RawSetString("type", lua.LString(ctx.Type))
	t.RawSetString("team", lua.LNumber(ctx.Team))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("z", lua.LNumber(ctx.Z))
	t.RawSetString("heading", lua.LNumber(ctx.Heading))
	t.RawSetString("energy", lua.LNumber(ctx.Energy))
	if ctx.Flying {
		t.RawSetString("flying", lua.LTrue)
	} else {
		t.RawSetString("flying", lua.LFalse)
	}
	if ctx.Landed {
		t.RawSetString("landed", lua.LTrue)
	} else {
		t.RawSetString("landed", lua.LFalse)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua unit_behavior error", zap.Error(err), zap.Int("id", ctx.ID))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil
	}

	var cmds []Command
	rt.ForEach(func(_, v lua.LValue) {
		if row, ok := v.(*lua.LTable); ok {
			cmds = append(cmds, Command{
				Type:  lua.LVAsString(row.RawGetString("type")),
				Angle: float64(lua.LVAsNumber(row.RawGetString("angle"))),
				Dist:  float64(lua.LVAsNumber(row.RawGetString("dist"))),
			})
		}
	})
	return cmds
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
