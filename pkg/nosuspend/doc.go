// Package nosuspend keeps the machine awake while critical work runs.
//
// A [Guard] scopes one power-inhibition request: acquiring it pushes the
// request onto a process-wide stack and applies the merged effective
// state to the platform; releasing it restores whatever was in force
// before. Guards nest, and nesting is strictly lexical: release order
// must mirror acquire order.
//
//	guard, err := nosuspend.Acquire(nosuspend.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer guard.Release()
//	// long download, render, backup...
//
// For a closed scope, [Do] handles the release:
//
//	err := nosuspend.Do(nosuspend.DefaultOptions(), func() error {
//	    return render(ctx)
//	})
//
// By default a guard inhibits system suspend only and inherits the
// ambient display policy. Set Options.Display to keep the screen on,
// and Options.Inherit to false to replace the ambient state outright
// for the guard's duration.
//
// On platforms without a usable inhibition mechanism acquisition
// degrades to a no-op instead of failing; [Platform] exposes that
// degradation so callers can warn the user.
package nosuspend
