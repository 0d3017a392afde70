// Package sim provides management of the ArduPilot SITL simulator process.
//
// SITL (software-in-the-loop) runs the ArduPilot flight stack as an
// ordinary OS process, launched through ArduPilot's sim_vehicle.py
// wrapper. This package manages one simulator instance as a subprocess:
//
//   - Configuration-driven launch (vehicle type, system ID, parameter file)
//   - An isolated scratch workspace used as the child's working directory
//   - Hard-kill termination and guaranteed workspace cleanup via Close
//
// The simulator command is built from typed configuration, so absent
// options are omitted from the argument list entirely rather than passed
// as empty strings.
//
// Example usage:
//
//	launcher, err := sim.NewLauncher(sim.Config{
//	    VehicleID:  3,
//	    EnableLogs: true,
//	    LogDir:     "/var/log/sitl",
//	})
//	if err != nil {
//	    return err
//	}
//	defer launcher.Close()
//
//	if err := launcher.Launch(ctx); err != nil {
//	    return err
//	}
package sim
