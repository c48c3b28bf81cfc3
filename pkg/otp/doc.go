// Package otp sends and verifies one-time passwords for mobile number
// verification on the contact form.
//
// Simulated is the only shipped Service. With a fixed demo code it accepts
// that code for every number; with an empty demo code it derives a fresh
// six-digit HOTP code (RFC 4226) per send and exposes it through LastCode so
// a terminal front end can display it.
//
//	svc := otp.NewSimulated(otp.WithDemoCode("123456"), otp.WithCooldown(30*time.Second))
//	if err := svc.Send(ctx, "9876543210"); err != nil {
//		var cd *otp.CooldownError
//		if errors.As(err, &cd) {
//			fmt.Printf("Wait %ds\n", cd.Seconds())
//		}
//	}
//	ok, err := svc.Verify(ctx, "9876543210", "123456")
package otp
