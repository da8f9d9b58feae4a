package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marblesj/wace-student-trainer/internal/app"
	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

// bootstrap opens the store, loads the content files, and builds an
// initialized engine. Callers own closing the store.
func bootstrap(cmd *cobra.Command) (*store.Store, *engine.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	schedulePath, err := resolveSchedulePath(cmd)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	base, err := schedule.LoadBase(schedulePath)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load schedule %s: %w", schedulePath, err)
	}

	bundlePath, err := resolveBundlePath(cmd)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	bundle, err := catalog.LoadBundle(bundlePath)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load question bundle %s: %w", bundlePath, err)
	}

	eng := engine.New(engine.Options{
		Base:            base,
		BaseBundle:      bundle,
		Questions:       st.Questions(),
		ScheduleUpdates: st.ScheduleUpdates(),
		Diagrams:        st.Diagrams(),
		Profile:         st.Profile(),
		AppVersion:      version,
	})
	if err := eng.Init(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("initialize engine: %w", err)
	}
	return st, eng, nil
}

// runApp builds the engine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, eng, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Engine:  eng,
		Store:   st,
		Version: version,
	})
}
