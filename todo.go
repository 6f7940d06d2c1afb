/*
	Project: Hadir - school attendance dashboard
	Target: Schools with grades 1 to 4, four classes each
*/
package hadir

/*
TODO: keep one attendance document per day; saving currently replaces the previous day
TODO: student management screen (the shell shows a placeholder)
TODO: import real class rosters instead of the generated ones

Apps:
	- hadir (CLI + interactive shell)
		* roster | take | report | export | banners | darkmode | migrate | shell
	- api (echo)
		* /v1/roster, /v1/attendance, /v1/reports, /v1/banners, /v1/settings/display

Storage: memory | sqlite3 | postgres (kv_store table, goose migrations in fs/)
*/
