// Package loop drives the demo: one Step polls at most one input event,
// feeds real elapsed time into a fixed-timestep accumulator, integrates the
// character once per whole step and redraws the frame.
//
// # Fixed timestep
//
// Each Step adds the clock delta since the previous Step to an accumulator
// and drains it in DeltaTime-sized steps:
//
//	for acc >= DeltaTime {
//	    character.Integrate(t, DeltaTime)
//	    acc -= DeltaTime
//	    t += DeltaTime
//	}
//
// If less than one step has accumulated the character is not integrated but
// the frame is still drawn. After a stall every pending step is drained in
// the same Step; there is no catch-up cap.
//
// # Frame limit
//
// WithFrameLimit makes every Step wait for its slot of a token-bucket
// limiter before polling, so the cap applies to every host.
//
// # Hosts
//
// Driver does not own a thread or a window. The gogpu window host calls Step
// from its draw callback; the headless host and Run call it in a plain loop.
package loop
