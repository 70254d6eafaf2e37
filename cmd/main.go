package main

import (
	"fmt"
	"os"

	"book_catalog/lang"
	"book_catalog/library"
	"book_catalog/ui"
	"book_catalog/utils"
)

func main() {
	if err := utils.Main(); err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(utils.AppConfig.Log); err != nil {
		fmt.Println("Error opening log:", err)
		os.Exit(1)
	}
	defer utils.CloseLogger()

	if !lang.SetLocale(lang.Locale(utils.AppConfig.UI.Language)) {
		utils.Warn("unknown language, using default", "language", utils.AppConfig.UI.Language)
	}

	cat, err := library.Load(utils.AppConfig.Catalog.Path)
	if err != nil {
		utils.Error("catalog load failed", "err", err)
		utils.CloseLogger()
		fmt.Println("Error loading catalog:", err)
		os.Exit(1)
	}
	utils.Info("starting", "books", cat.Len(), "genres", len(cat.Genres()), "locale", lang.CurrentLocale())

	if err := ui.RunApp(cat); err != nil {
		utils.Error("program exited with error", "err", err)
		utils.CloseLogger()
		fmt.Println(err)
		os.Exit(1)
	}
}
