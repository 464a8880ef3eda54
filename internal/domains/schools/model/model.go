package model

import "campusvisit/infras/backend"

type CityGroup struct {
	City     string
	Schools  []backend.School
	Expanded bool
}

// GroupByCity keeps cities, and schools inside a city, in the order they first appear.
func GroupByCity(schools []backend.School, expanded map[string]bool) []CityGroup {
	groups := make([]CityGroup, 0)
	index := make(map[string]int)

	for _, school := range schools {
		position, ok := index[school.City]
		if !ok {
			position = len(groups)
			index[school.City] = position
			groups = append(groups, CityGroup{City: school.City, Expanded: expanded[school.City]})
		}

		groups[position].Schools = append(groups[position].Schools, school)
	}

	return groups
}

func Replace(schools []backend.School, updated backend.School) []backend.School {
	for index := range schools {
		if schools[index].ID == updated.ID {
			schools[index] = updated

			return schools
		}
	}

	return schools
}

func Remove(schools []backend.School, id int64) []backend.School {
	kept := schools[:0]

	for _, school := range schools {
		if school.ID != id {
			kept = append(kept, school)
		}
	}

	return kept
}
