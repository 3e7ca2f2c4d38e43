package telemetry

import "testing"

func TestFingerprint(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		cases := map[string]DataHash{
			"":    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			"abc": "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		}
		for text, want := range cases {
			if got := Fingerprint(text); got != want {
				t.Errorf("Fingerprint(%q) = %s, want %s", text, got, want)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := Fingerprint("ESP-01:22.5")
		second := Fingerprint("ESP-01:22.5")
		if first != second {
			t.Errorf("fingerprint is not deterministic: %s != %s", first, second)
		}
	})

	t.Run("distinct inputs differ", func(t *testing.T) {
		if Fingerprint("ESP-01:22.5") == Fingerprint("ESP-01:22.6") {
			t.Error("distinct inputs produced the same fingerprint")
		}
	})

	t.Run("valid hash form", func(t *testing.T) {
		h := Fingerprint("ESP-01:22.5")
		if _, err := NewDataHash(string(h)); err != nil {
			t.Errorf("fingerprint is not a valid DataHash: %v", err)
		}
	})
}
