package translit

import "testing"

func TestTransliterate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Георги", "Georgi"},
		{"Стефан", "Stefan"},
		{"Цветан", "Tsvetan"},
		{"Лъчезар", "Lachezar"},
		{"Жоро", "Zhoro"},
		{"Щерьо", "Shteryo"},
		{"Юлия", "Yuliya"},
		{"Яна", "Yana"},
		{"Гергьовден", "Gergyovden"},
		{"", ""},
		{"Ivan", "Ivan"},
		{"Петър и Павел", "Petar i Pavel"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Transliterate(tt.input); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
