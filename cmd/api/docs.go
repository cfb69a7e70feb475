package main

// @title Whereabouts API
// @version 1.0
// @description Points of interest on a map, favorites, and proximity notifications.
// @BasePath /
