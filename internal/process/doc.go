// Package process provides minimal subprocess spawning and termination.
//
// This package is designed for one-shot child processes such as the
// SITL simulator: start them with a given argument list and working
// directory, and later tear them down with a hard kill. It deliberately
// does not supervise the child — no health checks, no restarts, no
// output capture. Callers that need to know whether the child is still
// alive must arrange that themselves.
//
// Example usage:
//
//	h, err := process.Start(ctx, process.Config{
//	    Name:    "sitl",
//	    Binary:  "sim_vehicle.py",
//	    Args:    []string{"-v", "ArduCopter"},
//	    WorkDir: workspace,
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer h.Kill()
package process
