package main

import (
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core/banner"
)

func (cli *commandLine) printBanners(banners []string) {
	if len(banners) == 0 {
		cli.println("(no banners)")
		return
	}
	for i, b := range banners {
		cli.printf("%d  %s\n", i, b)
	}
}

func (cli *commandLine) listBanners() error {
	banners, err := cli.banners.All()
	if err != nil {
		return errors.Wrap(err, "listing banners")
	}
	cli.printBanners(banners)
	return nil
}

func (cli *commandLine) addBanner(ref string) error {
	banners, err := cli.banners.Add(ref)
	if err != nil {
		return errors.Wrap(err, "adding banner")
	}
	cli.printBanners(banners)
	return nil
}

func (cli *commandLine) removeBanner(index int) error {
	banners, err := cli.banners.Remove(index)
	if err != nil {
		if errors.Cause(err) == banner.ErrNotFound {
			return errors.Errorf("no banner at index %d", index)
		}
		return errors.Wrap(err, "removing banner")
	}
	cli.printBanners(banners)
	return nil
}

func (cli *commandLine) resetBanners() error {
	banners, err := cli.banners.Reset()
	if err != nil {
		return err
	}
	cli.printBanners(banners)
	return nil
}

func modeName(on bool) string {
	if on {
		return "dark"
	}
	return "light"
}

func (cli *commandLine) darkMode(sub string) error {
	var on bool
	var err error
	switch sub {
	case "status":
		on = cli.prefs.DarkMode()
	case "on", "off":
		on = sub == "on"
		err = cli.prefs.SetDarkMode(on)
	case "toggle":
		on, err = cli.prefs.ToggleDarkMode()
	default:
		cli.printUsage()
		return errHelp
	}
	if err != nil {
		return errors.Wrap(err, "saving display mode")
	}
	cli.printf("display mode: %s\n", modeName(on))
	return nil
}
