// Package i18n holds the user-visible strings for notifications and the
// tray menu, translated per the detected system locale.
package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Time for a break!": {
		"pt": "Hora de fazer uma pausa!",
		"es": "¡Hora de un descanso!",
		"ru": "Пора сделать перерыв!",
	},
	"Step away for %d minutes.": {
		"pt": "Afaste-se por %d minutos.",
		"es": "Aléjate por %d minutos.",
		"ru": "Отойдите на %d минут.",
	},
	"Break is over": {
		"pt": "A pausa acabou",
		"es": "El descanso terminó",
		"ru": "Перерыв окончен",
	},
	"Back to work.": {
		"pt": "De volta ao trabalho.",
		"es": "De vuelta al trabajo.",
		"ru": "Снова за работу.",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Resume": {
		"pt": "Retomar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Reset to defaults": {
		"pt": "Restaurar padrões",
		"es": "Restablecer valores",
		"ru": "Сбросить настройки",
	},
	"Sound": {
		"pt": "Som",
		"es": "Sonido",
		"ru": "Звук",
	},
	"Launch at login": {
		"pt": "Iniciar com o sistema",
		"es": "Iniciar al arrancar",
		"ru": "Запуск при входе",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Work": {
		"pt": "Trabalho",
		"es": "Trabajo",
		"ru": "Работа",
	},
	"Break": {
		"pt": "Pausa",
		"es": "Descanso",
		"ru": "Перерыв",
	},
	"%d min remaining": {
		"pt": "%d min restantes",
		"es": "%d min restantes",
		"ru": "осталось %d мин",
	},
	"paused": {
		"pt": "pausado",
		"es": "pausado",
		"ru": "пауза",
	},
}

func init() {
	if forced := strings.TrimSpace(os.Getenv("RESPITE_LANG")); forced != "" {
		lang = forced
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		lang = "en"
		return
	}

	detected := userLocales[0]
	switch {
	case strings.HasPrefix(detected, "pt"):
		lang = "pt"
	case strings.HasPrefix(detected, "es"):
		lang = "es"
	case strings.HasPrefix(detected, "ru"):
		lang = "ru"
	default:
		lang = "en"
	}
	log.Printf("i18n: language set to %s", lang)
}

// T returns the translation of key for the active language, or the key
// itself when no translation exists.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// Lang returns the active language code.
func Lang() string {
	return lang
}
