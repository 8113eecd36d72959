// Package both provides Both[L, R], a plain two-slot product where both
// values are always present.
//
// Key operations:
// - New/FromCouple: construction
// - Couple/Options: conversion back to a couple or a pair of options
// - IntoLeft/IntoRight: lossy projection into an Either
// - Swap: exchange the slots
// - Map/MapLeft/MapRight: transform the slots
// - FromOptions: partial construction requiring both options filled
package both
